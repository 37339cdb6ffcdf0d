package validator

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContainsOption configures Contains.
type ContainsOption func(*containsConfig)

type containsConfig struct {
	ignoreCase     bool
	minOccurrences int
}

// IgnoreCase lower-cases both the value and the element before counting.
func IgnoreCase() ContainsOption {
	return func(c *containsConfig) { c.ignoreCase = true }
}

// MinOccurrences sets how many times the element must appear (default 1).
// Zero or a negative count is always satisfied.
func MinOccurrences(n int) ContainsOption {
	return func(c *containsConfig) { c.minOccurrences = n }
}

// Contains validates that the value contains element at least the required
// number of times. Matches may overlap: "aa" occurs twice in "aaa".
// An empty element is always satisfied.
func Contains(element string, opts ...ContainsOption) Func {
	cfg := containsConfig{minOccurrences: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	needle := element
	if cfg.ignoreCase {
		needle = lower(element)
	}

	return func(value any) Errors {
		if IsEmpty(value) {
			return nil
		}
		if needle == "" || cfg.minOccurrences <= 0 {
			return nil
		}

		str := Stringify(value)
		haystack := str
		if cfg.ignoreCase {
			haystack = lower(str)
		}

		n := CountOccurrences(haystack, needle)
		if n >= cfg.minOccurrences {
			return nil
		}

		return Errors{KeyContains: {
			"requiredElement":   element,
			"actualValue":       str,
			"minOccurrences":    cfg.minOccurrences,
			"actualOccurrences": n,
		}}
	}
}

// CountOccurrences counts possibly overlapping occurrences of sub in s.
// After a match the scan resumes one character later, not past the match.
func CountOccurrences(s, sub string) int {
	if sub == "" {
		return 0
	}

	count := 0
	for i := 0; i <= len(s)-len(sub); {
		idx := strings.Index(s[i:], sub)
		if idx < 0 {
			break
		}
		count++
		_, size := utf8.DecodeRuneInString(s[i+idx:])
		i += idx + size
	}
	return count
}

// lower folds s with language-neutral casing rules. A Caser keeps state, so
// one is created per call to stay safe for concurrent validators.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
