package validator

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Validator keys used in Errors.
const (
	KeyContains     = "contains"
	KeyEquals       = "equals"
	KeyIsAfter      = "isAfter"
	KeyIsBefore     = "isBefore"
	KeyIsCreditCard = "isCreditCard"
	KeyIsLuhnNumber = "isLuhnNumber"
)

// Details carries the context of a single failure: the offending value and
// the parameters that were violated.
type Details map[string]any

// Errors maps a validator key to the details of its failure.
// A nil Errors means the value is valid.
type Errors map[string]Details

// Has reports whether the validator identified by key failed.
func (e Errors) Has(key string) bool {
	_, ok := e[key]
	return ok
}

// Keys returns the failed validator keys in sorted order.
func (e Errors) Keys() []string {
	return slices.Sorted(maps.Keys(e))
}

// Merge returns the union of errs, or nil if none of them carries a failure.
// When two mappings share a key the later one wins.
func Merge(errs ...Errors) Errors {
	var merged Errors
	for _, e := range errs {
		if len(e) == 0 {
			continue
		}
		if merged == nil {
			merged = make(Errors, len(e))
		}
		maps.Copy(merged, e)
	}
	return merged
}

// Validator checks a single value.
type Validator interface {
	Validate(value any) Errors
}

// Func is a validator built by one of the constructors of this package.
type Func func(value any) Errors

// Validate calls f(value).
func (f Func) Validate(value any) Errors {
	return f(value)
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	// Errors is the mapping reported by the validator, when the rule was
	// built with FieldRule.
	Errors Errors
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Mapping groups the validator mappings by field, merging the mappings of
// every rule that failed for the same field.
func (ve ValidationErrors) Mapping() map[string]Errors {
	out := make(map[string]Errors)
	for _, err := range ve {
		if len(err.Errors) == 0 {
			continue
		}
		out[err.Field] = Merge(out[err.Field], err.Errors)
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
