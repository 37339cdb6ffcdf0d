package binder

import "errors"

// Common binding errors
var (
	// ErrBinderNotApplicable marks a binder that does not handle the request's
	// content type, so the next binder can try.
	ErrBinderNotApplicable = errors.New("binder not applicable")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidPath          = errors.New("invalid path parameter")
)
