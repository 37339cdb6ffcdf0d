package form

import "errors"

var (
	// ErrInvalidSchema wraps every problem found while decoding or building a Schema.
	ErrInvalidSchema = errors.New("invalid form schema")

	// ErrUnknownControl is returned when a name does not match any control of a group.
	ErrUnknownControl = errors.New("unknown control")
)
