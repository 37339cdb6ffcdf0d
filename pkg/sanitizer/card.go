package sanitizer

import "strings"

// StripSeparators removes the spaces and hyphens users type between digit
// groups of card and account numbers. Any other character is preserved so
// that later checks can still reject it.
func StripSeparators(s string) string {
	return separatorRegex.ReplaceAllString(s, "")
}

// MaskCreditCard keeps only the last 4 digits visible, the form card numbers
// may take in logs.
func MaskCreditCard(cardNumber string) string {
	digits := nonDigitRegex.ReplaceAllString(cardNumber, "")
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
