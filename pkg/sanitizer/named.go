package sanitizer

import (
	"fmt"
	"slices"
	"strings"
)

var named = map[string]func(string) string{
	"trim":          Trim,
	"lower":         ToLower,
	"upper":         ToUpper,
	"squish":        NormalizeWhitespace,
	"digits":        KeepDigits,
	"separators":    StripSeparators,
	"strip_html":    StripHTML,
	"control_chars": RemoveControlChars,
}

// Names lists the transforms available to Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the transform registered under name. Names are
// case-insensitive.
func Lookup(name string) (func(string) string, error) {
	fn, ok := named[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
	return fn, nil
}

// Chain resolves every name and composes the transforms in order.
func Chain(names ...string) (func(string) string, error) {
	fns := make([]func(string) string, 0, len(names))
	for _, name := range names {
		fn, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return Compose(fns...), nil
}
