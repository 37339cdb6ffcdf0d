package demo

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formvalid/handler"
	"github.com/dmitrymomot/formvalid/pkg/logger"
	"github.com/dmitrymomot/formvalid/pkg/sanitizer"
	"github.com/dmitrymomot/formvalid/pkg/validator"
)

var (
	errUnknownValidator = handler.NewHTTPError(http.StatusNotFound, "unknown_validator")
	errUnknownProvider  = handler.NewHTTPError(http.StatusBadRequest, "unknown_provider")
	errUnknownTransform = handler.NewHTTPError(http.StatusBadRequest, "unknown_transform")
)

type catalogResponse struct {
	Validators []string `json:"validators"`
	Providers  []string `json:"providers"`
	Transforms []string `json:"transforms"`
}

func (a *App) catalog(handler.Context, struct{}) handler.Response {
	providers := make([]string, 0, len(validator.Providers()))
	for _, p := range validator.Providers() {
		providers = append(providers, string(p))
	}
	return handler.JSON(catalogResponse{
		Validators: validator.Keys(),
		Providers:  providers,
		Transforms: sanitizer.Names(),
	})
}

type validateRequest struct {
	Validator string           `path:"validator" json:"-"`
	Value     any              `json:"value"`
	Options   validator.Params `json:"options"`
	// Transforms names sanitizer steps applied to a string value first.
	Transforms []string `json:"transforms,omitempty"`
}

type validateResponse struct {
	Valid  bool             `json:"valid"`
	Value  any              `json:"value"`
	Errors validator.Errors `json:"errors"`
}

func (a *App) validateValue(ctx handler.Context, req validateRequest) handler.Response {
	fn, err := validator.Build(req.Validator, req.Options, a.clock)
	switch {
	case errors.Is(err, validator.ErrUnknownValidator):
		return handler.JSONError(fmt.Errorf("%w: %q", errUnknownValidator, req.Validator))
	case errors.Is(err, validator.ErrUnknownProvider):
		return handler.JSONError(fmt.Errorf("%w: %q", errUnknownProvider, req.Options.Provider))
	case err != nil:
		return handler.JSONError(err)
	}

	value := req.Value
	if len(req.Transforms) > 0 {
		clean, err := sanitizer.Chain(req.Transforms...)
		if err != nil {
			return handler.JSONError(fmt.Errorf("%w: %v", errUnknownTransform, err))
		}
		if s, ok := value.(string); ok {
			value = clean(s)
		}
	}

	errs := fn(value)
	a.log.DebugContext(ctx, "value checked",
		logger.Validator(req.Validator),
		slog.Bool("valid", errs == nil),
	)
	return handler.JSON(validateResponse{
		Valid:  errs == nil,
		Value:  value,
		Errors: errs,
	})
}
