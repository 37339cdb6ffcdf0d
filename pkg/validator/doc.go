// Package validator provides form-validation predicates: substring
// containment, exact equality, date ordering, credit card format and the
// Luhn checksum.
//
// Every constructor returns a Func, a pure function of the value that yields
// nil when the value is valid or an Errors mapping keyed by the validator name
// ("contains", "equals", "isAfter", "isBefore", "isCreditCard",
// "isLuhnNumber") whose Details describe the failure. Validators hold no state
// and are safe for concurrent use.
//
// # Usage
//
//	check := validator.Contains("hello", validator.IgnoreCase(), validator.MinOccurrences(2))
//	if errs := check("Hello, hello!"); errs != nil {
//	    fmt.Println(errs[validator.KeyContains]["actualOccurrences"])
//	}
//
// Absent values (nil, "", nil pointers, zero times) are always valid; pair a
// validator with a required rule when the field is mandatory.
//
// # Error Handling
//
// Validation failures are values, never errors. Configuration mistakes are not:
// IsCreditCard panics on an unknown provider. Code that builds validators from
// untrusted configuration should use Build or LookupProvider, which return
// ErrUnknownProvider instead.
//
// # Aggregation
//
// FieldRule turns a validator result into a Rule so it composes with Apply,
// which collects failures into ValidationErrors:
//
//	err := validator.Apply(
//	    validator.FieldRule("card", card, validator.IsCreditCard(validator.WithProvider("visa"))),
//	    validator.FieldRule("starts_at", startsAt, validator.IsAfter()),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Mapping() groups the Errors mappings by field
//	}
//
// # Time
//
// IsAfter and IsBefore default their comparison date to "now". Pass WithClock
// to pin it; tests use FixedClock.
package validator
