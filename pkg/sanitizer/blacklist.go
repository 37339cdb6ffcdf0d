package sanitizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Blacklist returns a transform that removes every character listed in chars.
// Each character is matched literally, so chars such as "]", "^" or "-" need
// no escaping by the caller. An empty chars yields the identity transform.
//
// The transform is idempotent: cleaning an already cleaned string returns it
// unchanged.
//
//	clean := sanitizer.Blacklist("!@#$%")
//	clean("hello@world!") // "helloworld"
func Blacklist(chars string) func(string) string {
	if chars == "" {
		return func(s string) string { return s }
	}

	re := regexp.MustCompile("[" + escapeClass(chars) + "]+")
	return func(s string) string {
		if s == "" {
			return s
		}
		return re.ReplaceAllString(s, "")
	}
}

// escapeClass escapes chars for use inside a regexp character class.
// RE2 treats any escaped ASCII punctuation as a literal.
func escapeClass(chars string) string {
	var b strings.Builder
	b.Grow(len(chars) * 2)
	for _, r := range chars {
		if r == utf8.RuneError {
			continue
		}
		if r < utf8.RuneSelf && !isWordChar(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isWordChar(r rune) bool {
	return r == '_' || ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
