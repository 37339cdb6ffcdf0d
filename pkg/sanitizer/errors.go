package sanitizer

import "errors"

// ErrUnknownTransform is returned by Lookup and Chain for names that are not registered.
var ErrUnknownTransform = errors.New("unknown transform")
