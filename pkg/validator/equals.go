package validator

// Equals validates that the value, coerced to a string, is exactly
// comparison. The comparison is ordinal and case-sensitive.
func Equals(comparison string) Func {
	return func(value any) Errors {
		if IsEmpty(value) {
			return nil
		}

		str := Stringify(value)
		if str == comparison {
			return nil
		}

		return Errors{KeyEquals: {
			"requiredValue": comparison,
			"actualValue":   str,
		}}
	}
}
