package validator

import (
	"fmt"
	"maps"
)

var translationKeys = map[string]string{
	KeyContains:     "validation.contains",
	KeyEquals:       "validation.equals",
	KeyIsAfter:      "validation.date_after",
	KeyIsBefore:     "validation.date_before",
	KeyIsCreditCard: "validation.credit_card",
	KeyIsLuhnNumber: "validation.luhn_number",
}

// FieldRule runs v against value and wraps the outcome in a Rule, so core
// validators can be mixed with any other rule passed to Apply.
//
//	err := validator.Apply(
//	    validator.FieldRule("card", req.Card, validator.IsCreditCard()),
//	    validator.FieldRule("terms", req.Terms, validator.Equals("accepted")),
//	)
func FieldRule(field string, value any, v Validator) Rule {
	errs := v.Validate(value)
	if errs == nil {
		return Rule{Check: func() bool { return true }}
	}

	key := errs.Keys()[0]
	details := errs[key]

	values := make(map[string]any, len(details)+1)
	maps.Copy(values, details)
	values["field"] = field

	tk, ok := translationKeys[key]
	if !ok {
		tk = "validation." + key
	}

	return Rule{
		Check: func() bool { return false },
		Error: ValidationError{
			Field:             field,
			Message:           Message(key, details),
			TranslationKey:    tk,
			TranslationValues: values,
			Errors:            errs,
		},
	}
}

// Message renders a short English description of the failure reported under
// key. Unknown keys, such as tags of other validation libraries, yield a
// generic "failed <key>".
func Message(key string, d Details) string {
	switch key {
	case KeyContains:
		return fmt.Sprintf("must contain %q at least %v time(s)", d["requiredElement"], d["minOccurrences"])
	case KeyEquals:
		return fmt.Sprintf("must equal %q", d["requiredValue"])
	case KeyIsAfter:
		return fmt.Sprintf("date must be after %v", d["comparisonDate"])
	case KeyIsBefore:
		return fmt.Sprintf("date must be before %v", d["comparisonDate"])
	case KeyIsCreditCard:
		if p, ok := d["provider"]; ok {
			return fmt.Sprintf("invalid %v card number", p)
		}
		return "invalid credit card number"
	case KeyIsLuhnNumber:
		if c, ok := d["invalidCharacter"]; ok {
			return fmt.Sprintf("invalid character %q", c)
		}
		return "invalid checksum"
	}
	return "failed " + key
}
