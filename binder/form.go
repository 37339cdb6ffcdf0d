package binder

import (
	"fmt"
	"net/http"
)

// Form creates a binder for application/x-www-form-urlencoded bodies.
//
// Fields are matched by the `form` tag, falling back to the lower-cased field
// name; `form:"-"` skips a field. Strings, integers, floats, bools, pointers
// and slices of those are supported.
//
//	type SignupRequest struct {
//	    Email string `form:"email"`
//	    Terms bool   `form:"terms"` // "on", "yes" and "1" are true
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := requireMediaType(r, "application/x-www-form-urlencoded"); err != nil {
			return err
		}
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)
	}
}
