package form

import (
	"github.com/dmitrymomot/formvalid/pkg/sanitizer"
	"github.com/dmitrymomot/formvalid/pkg/validator"
)

// Blacklist removes every character of chars from the control value.
// It never reports an error: when cleaning changes a non-empty value, the
// cleaned string is written back to the control after the validation pass
// completes. The write-back emits no change notification and is followed by
// one more validation pass. An empty chars does nothing.
func Blacklist(chars string) Validator {
	if chars == "" {
		return ValidatorFunc(func(*Control) validator.Errors { return nil })
	}
	return Sanitize(sanitizer.Blacklist(chars))
}

// Sanitize rewrites the control value with clean using the same deferred
// write-back as Blacklist. Values are coerced to strings first, so the
// number 0 is cleaned while nil, "" and false are skipped. Called outside
// Control.Validate, the write-back starts immediately.
func Sanitize(clean func(string) string) Validator {
	return ValidatorFunc(func(c *Control) validator.Errors {
		value := c.Value()
		if validator.IsEmpty(value) || value == false {
			return nil
		}

		str := validator.Stringify(value)
		if cleaned := clean(str); cleaned != str {
			c.writeBack(value, cleaned)
		}
		return nil
	})
}
