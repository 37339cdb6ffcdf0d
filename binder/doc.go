// Package binder binds HTTP request data to Go structs for the handler
// package.
//
// Each binder is a func(r *http.Request, v any) error. Binders are applied in
// order, so a struct can be filled from the path and the body in one request:
//
//	type ValidateRequest struct {
//	    Validator string           `path:"validator" json:"-"`
//	    Value     any              `json:"value"`
//	    Options   validator.Params `json:"options"`
//	}
//
// # Available Binders
//
//   - JSON(): strict JSON bodies (unknown fields rejected, 1MB limit)
//   - Form(): application/x-www-form-urlencoded bodies via `form` tags
//   - Path(extractor): router path parameters via `path` tags
//   - Signals(): DataStar signal payloads via `json` tags
//
// # Content Negotiation
//
// Body binders return an error wrapping ErrBinderNotApplicable when the
// request carries another media type. The handler package skips such binders,
// which lets one endpoint accept DataStar, JSON and form posts.
//
// # Error Handling
//
// Failures wrap one of the exported sentinels (ErrInvalidJSON, ErrInvalidForm,
// ErrInvalidPath, ErrMissingContentType, ErrUnsupportedMediaType) and can be
// matched with errors.Is.
package binder
