package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formvalid/pkg/logger"
	"github.com/dmitrymomot/formvalid/pkg/requestid"
)

// Signal names patched by the error handler on DataStar requests.
const (
	ErrorSignal       = "error"
	FieldErrorsSignal = "errors"
)

func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	attrs := []slog.Attr{
		logger.Error(err),
		logger.Component("error_handler"),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
	}
	if len(info.Fields) > 0 {
		attrs = append(attrs, logger.Fields(info.Fields.Fields()...))
	}
	log.LogAttrs(r.Context(), determineLogLevel(info.StatusCode), "request error", attrs...)
}

// renderDataStarResponse patches the error signals: the message under
// "error" and the per-field mapping under "errors".
func renderDataStarResponse(ctx Context, info ErrorInfo, log *slog.Logger) {
	fields := map[string]any{}
	for field, errs := range info.Fields {
		fields[field] = errs
	}
	data, err := json.Marshal(map[string]any{
		ErrorSignal: map[string]any{
			"code":      info.Code,
			"message":   info.Message,
			"requestId": requestid.FromContext(ctx.Request().Context()),
		},
		FieldErrorsSignal: fields,
	})
	if err == nil {
		sse := ctx.SSE()
		if sse == nil {
			sse = NewSSE(ctx.ResponseWriter(), ctx.Request())
		}
		err = sse.PatchSignals(data)
	}
	if err != nil {
		log.ErrorContext(ctx.Request().Context(), "failed to patch error signals",
			logger.Error(err),
			logger.Component("error_handler"),
		)
	}
}

// NewErrorHandler creates the default error handler that adapts to request type.
// DataStar requests receive error signals over SSE, everything else a JSON
// error body. Every error is logged with the request id, client errors at
// warn level and server errors at error level.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		if IsDataStar(ctx.Request()) {
			renderDataStarResponse(ctx, info, log)
			return
		}

		w := ctx.ResponseWriter()
		if id := requestid.FromContext(ctx.Request().Context()); id != "" {
			w.Header().Set(requestid.Header, id)
		}
		if renderErr := JSONError(err).Render(w, ctx.Request()); renderErr != nil {
			log.ErrorContext(ctx.Request().Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}
