package handler

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/formvalid/pkg/validator"
)

// ValidationError maps a field name to the validator failures of that field.
// It is rendered as 422 Unprocessable Entity.
type ValidationError map[string]validator.Errors

// NewValidationError creates an empty ValidationError.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Messages(field), ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add merges errs into the failures of field. A nil errs is ignored.
func (e ValidationError) Add(field string, errs validator.Errors) {
	if merged := validator.Merge(e[field], errs); merged != nil {
		e[field] = merged
	}
}

// Has reports whether field failed.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// Fields returns the failing fields, sorted.
func (e ValidationError) Fields() []string {
	return slices.Sorted(maps.Keys(e))
}

// Messages describes every failure of field in English, ordered by
// validator key.
func (e ValidationError) Messages(field string) []string {
	errs := e[field]
	messages := make([]string, 0, len(errs))
	for _, key := range errs.Keys() {
		messages = append(messages, validator.Message(key, errs[key]))
	}
	return messages
}

// IsEmpty returns true if there are no validation errors.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

// AsValidationError converts the result of validator.Apply into a
// ValidationError, keeping only rules built with validator.FieldRule.
func AsValidationError(errs validator.ValidationErrors) ValidationError {
	out := NewValidationError()
	for field, mapping := range errs.Mapping() {
		out.Add(field, mapping)
	}
	return out
}
