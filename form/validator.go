package form

import (
	"github.com/dmitrymomot/formvalid/pkg/validator"
)

// Validator checks a control. It returns nil when the control is valid or a
// mapping from validator name to failure details otherwise.
type Validator interface {
	Validate(c *Control) validator.Errors
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(c *Control) validator.Errors

// Validate calls f(c).
func (f ValidatorFunc) Validate(c *Control) validator.Errors {
	return f(c)
}

// Use adapts a value validator, such as any of the validator package
// constructors, to run against the control's current value.
func Use(v validator.Validator) Validator {
	return ValidatorFunc(func(c *Control) validator.Errors {
		return v.Validate(c.Value())
	})
}

// Dynamic resolves the validator on every pass, so its options can follow
// state that changes over time, typically the value of another control.
// A nil validator returned by resolve counts as valid.
//
//	end := form.NewControl(nil, form.Dynamic(func(*form.Control) validator.Func {
//	    return validator.IsAfter(validator.WithComparisonDate(start.Value()))
//	}))
func Dynamic(resolve func(c *Control) validator.Func) Validator {
	return ValidatorFunc(func(c *Control) validator.Errors {
		fn := resolve(c)
		if fn == nil {
			return nil
		}
		return fn(c.Value())
	})
}
