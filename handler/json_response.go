package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/formvalid/binder"
	"github.com/dmitrymomot/formvalid/pkg/validator"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                `json:"code,omitempty"`
	Message string                `json:"message,omitempty"`
	Fields  map[string]FieldError `json:"fields,omitempty"`
}

// FieldError describes why a single field failed validation: the raw
// validator mapping and an English message per failed validator.
type FieldError struct {
	Errors   validator.Errors `json:"errors"`
	Messages []string         `json:"messages"`
}

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON creates a JSON response with options. Errors passed as v are rendered
// like JSONError.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error = errorToDetail(val, &r.status)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates a JSON error response from an error with options.
//
// Status codes follow the error: ValidationError and
// validator.ValidationErrors yield 422 with per-field details, HTTPError its
// own code, binder failures 400 and anything else 500.
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}

	switch e := err.(type) {
	case *ErrorDetail:
		r.body.Error = e
	case error:
		r.body.Error = errorToDetail(e, &r.status)
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errorToDetail converts error to ErrorDetail and sets appropriate status
func errorToDetail(err error, status *int) *ErrorDetail {
	info := classifyError(err)
	*status = info.StatusCode

	detail := &ErrorDetail{
		Code:    info.Code,
		Message: info.Message,
	}
	if len(info.Fields) > 0 {
		detail.Fields = make(map[string]FieldError, len(info.Fields))
		for _, field := range info.Fields.Fields() {
			detail.Fields[field] = FieldError{
				Errors:   info.Fields[field],
				Messages: info.Fields.Messages(field),
			}
		}
	}
	return detail
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Fields     ValidationError
}

// classifyError maps err to a status code, an error code and a client-safe
// message. Internal errors never leak their text.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrInternalServerError.Key,
		Message:    "An error occurred processing your request",
	}

	var (
		httpErr   HTTPError
		fieldErrs ValidationError
		ruleErrs  validator.ValidationErrors
	)
	switch {
	case errors.As(err, &fieldErrs):
		info.StatusCode = http.StatusUnprocessableEntity
		info.Code = "validation_error"
		info.Message = fieldErrs.Error()
		info.Fields = fieldErrs

	case errors.As(err, &ruleErrs):
		info.StatusCode = http.StatusUnprocessableEntity
		info.Code = "validation_error"
		info.Message = ruleErrs.Error()
		info.Fields = AsValidationError(ruleErrs)

	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)
		if isClientError(httpErr.Code) {
			info.Message = err.Error()
		}

	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidPath),
		errors.Is(err, binder.ErrMissingContentType),
		errors.Is(err, binder.ErrUnsupportedMediaType):
		info.StatusCode = http.StatusBadRequest
		info.Code = ErrBadRequest.Key
		info.Message = err.Error()
	}
	return info
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}
