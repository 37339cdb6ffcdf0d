package sanitizer_test

import (
	"testing"

	"github.com/dmitrymomot/formvalid/pkg/sanitizer"
)

func BenchmarkBlacklist(b *testing.B) {
	clean := sanitizer.Blacklist(`!@#$%^&*()[]{}\-`)
	input := "user@example.com (primary) [work] #1 - 100%"

	b.ResetTimer()
	for b.Loop() {
		_ = clean(input)
	}
}

func BenchmarkCompose(b *testing.B) {
	composed := sanitizer.Compose(
		sanitizer.Trim,
		sanitizer.Blacklist("<>"),
		sanitizer.NormalizeWhitespace,
		sanitizer.ToLower,
	)
	input := "  <Hello>   World  "

	b.ResetTimer()
	for b.Loop() {
		_ = composed(input)
	}
}
