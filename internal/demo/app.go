package demo

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formvalid/binder"
	"github.com/dmitrymomot/formvalid/form"
	"github.com/dmitrymomot/formvalid/handler"
	"github.com/dmitrymomot/formvalid/pkg/clientip"
	"github.com/dmitrymomot/formvalid/pkg/httpserver"
	"github.com/dmitrymomot/formvalid/pkg/logger"
	"github.com/dmitrymomot/formvalid/pkg/requestid"
	"github.com/dmitrymomot/formvalid/pkg/tagrules"
	"github.com/dmitrymomot/formvalid/pkg/validator"
)

//go:embed signup.yaml
var signupSchema []byte

// App serves the validation API.
type App struct {
	log      *slog.Logger
	clock    validator.Clock
	signup   *form.Schema
	tags     *tagrules.Registry
	validate *playground.Validate
	onError  handler.ErrorHandler[handler.Context]
	proxies  []string
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the application logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithClock pins "now" for every date rule.
func WithClock(clock validator.Clock) Option {
	return func(a *App) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// WithTrustedHeaders sets the proxy headers the client address is read from.
func WithTrustedHeaders(headers ...string) Option {
	return func(a *App) { a.proxies = headers }
}

// New parses the embedded signup schema and wires the struct tag registry.
func New(opts ...Option) (*App, error) {
	a := &App{
		log:   slog.Default(),
		clock: validator.SystemClock,
	}
	for _, opt := range opts {
		opt(a)
	}

	schema, err := form.LoadSchema(bytes.NewReader(signupSchema))
	if err != nil {
		return nil, fmt.Errorf("signup schema: %w", err)
	}
	a.signup = schema

	a.tags = tagrules.New(tagrules.WithClock(a.clock))
	a.validate = a.tags.NewValidate()
	a.onError = handler.NewErrorHandler(a.log)
	return a, nil
}

// Router returns the HTTP routes of the service.
func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(a.proxies...))
	r.Use(middleware.Recoverer)
	r.Use(a.accessLog)

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(a.log, a.checkSchema))

	r.Route("/api", func(r chi.Router) {
		r.Get("/validators", handler.Wrap(a.catalog,
			handler.WithErrorHandler[handler.Context, struct{}](a.onError),
		))
		r.Post("/validate/{validator}", handler.Wrap(a.validateValue,
			handler.WithBinders[handler.Context, validateRequest](binder.Path(chi.URLParam), binder.JSON()),
			handler.WithErrorHandler[handler.Context, validateRequest](a.onError),
			handler.WithDecorators(timed[validateRequest]("validate", a.log)),
		))
		r.Post("/payments", handler.Wrap(a.pay,
			handler.WithBinders[handler.Context, paymentRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, paymentRequest](a.onError),
			handler.WithDecorators(timed[paymentRequest]("payments", a.log)),
		))
		r.Post("/signup", handler.Wrap(a.signupForm,
			handler.WithBinders[handler.Context, signupRequest](binder.Signals(), binder.JSON(), binder.Form()),
			handler.WithErrorHandler[handler.Context, signupRequest](a.onError),
			handler.WithDecorators(timed[signupRequest]("signup", a.log)),
		))
	})
	return r
}

// checkSchema builds an empty signup form, proving every rule resolves.
func (a *App) checkSchema(context.Context) error {
	_, err := a.signup.Build(form.WithClock(a.clock))
	return err
}

func (a *App) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		a.log.LogAttrs(r.Context(), slog.LevelInfo, "request",
			logger.Component("http"),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

// timed logs how long a handler took to produce its response.
func timed[R any](name string, log *slog.Logger) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "request validated",
				logger.Component(name),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}
