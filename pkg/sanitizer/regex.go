package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Digit group separators accepted in card numbers
	separatorRegex = regexp.MustCompile(`[- ]+`)

	nonDigitRegex   = regexp.MustCompile(`\D`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
)
