package validator

import "github.com/dmitrymomot/formvalid/pkg/sanitizer"

// IsLuhn reports whether value passes the Luhn mod-10 checksum.
// Spaces and hyphens are ignored; any other non-digit fails the check.
// A lone "0" is valid.
func IsLuhn(value string) bool {
	_, ok := luhnChecksum(sanitizer.StripSeparators(value))
	return ok
}

// IsLuhnNumber validates identification numbers (card numbers, IMEI, ...)
// with the Luhn checksum. Values that are not strings are ignored.
//
// A non-digit character is reported under "invalidCharacter".
func IsLuhnNumber() Func {
	return func(value any) Errors {
		s, ok := stringValue(value)
		if !ok || s == "" {
			return nil
		}

		sanitized := sanitizer.StripSeparators(s)
		if bad, found := firstInvalidDigit(sanitized); found {
			return Errors{KeyIsLuhnNumber: {
				"actualValue":      s,
				"invalidCharacter": string(bad),
			}}
		}

		if _, ok := luhnChecksum(sanitized); !ok {
			return Errors{KeyIsLuhnNumber: {"actualValue": s}}
		}
		return nil
	}
}

// luhnChecksum scans digits right to left, doubling every second one starting
// with the second rightmost. ok is false on a non-digit or a non-zero sum mod 10.
func luhnChecksum(digits string) (sum int, ok bool) {
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, false
		}

		d := int(c - '0')
		if double {
			d *= 2
			if d >= 10 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum, sum%10 == 0
}

// firstInvalidDigit returns the rightmost rune that is not an ASCII digit,
// the one a right-to-left scan trips over first.
func firstInvalidDigit(s string) (rune, bool) {
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] < '0' || runes[i] > '9' {
			return runes[i], true
		}
	}
	return 0, false
}
