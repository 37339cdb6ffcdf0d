package validator

import "errors"

var (
	// ErrUnknownProvider is raised when a credit card provider name is not in
	// the supported table. It signals a configuration mistake, not bad input.
	ErrUnknownProvider = errors.New("unknown credit card provider")

	// ErrUnknownValidator is returned by Build when no validator is registered
	// under the given key.
	ErrUnknownValidator = errors.New("unknown validator")
)
