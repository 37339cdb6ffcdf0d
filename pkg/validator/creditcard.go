package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/formvalid/pkg/sanitizer"
)

// Provider identifies a card issuing network.
type Provider string

const (
	Amex       Provider = "amex"
	DinersClub Provider = "dinersclub"
	Discover   Provider = "discover"
	JCB        Provider = "jcb"
	Mastercard Provider = "mastercard"
	UnionPay   Provider = "unionpay"
	Visa       Provider = "visa"
)

// Industry-standard prefix and length patterns, matched against the number
// with separators removed.
var cardPatterns = map[Provider]*regexp.Regexp{
	Amex:       regexp.MustCompile(`^3[47]\d{13}$`),
	DinersClub: regexp.MustCompile(`^3(?:0[0-5]|[68]\d)\d{11}$`),
	Discover:   regexp.MustCompile(`^6(?:011|5\d{2})\d{12,15}$`),
	JCB:        regexp.MustCompile(`^(?:2131|1800|35\d{3})\d{11}$`),
	Mastercard: regexp.MustCompile(`^5[1-5]\d{2}|(222[1-9]|22[3-9]\d|2[3-6]\d{2}|27[01]\d|2720)\d{12}$`),
	UnionPay:   regexp.MustCompile(`^(6[27]\d{14}|81\d{14,17})$`),
	Visa:       regexp.MustCompile(`^4\d{12}(\d{3,6})?$`),
}

// Providers returns the supported providers in alphabetical order.
func Providers() []Provider {
	providers := make([]Provider, 0, len(cardPatterns))
	for p := range cardPatterns {
		providers = append(providers, p)
	}
	slices.Sort(providers)
	return providers
}

// LookupProvider resolves name case-insensitively.
// Unknown names yield an error wrapping ErrUnknownProvider.
func LookupProvider(name string) (Provider, error) {
	p := Provider(strings.ToLower(name))
	if _, ok := cardPatterns[p]; !ok {
		return "", fmt.Errorf("%w: %q is not a valid credit card provider", ErrUnknownProvider, name)
	}
	return p, nil
}

// CardOption configures IsCreditCard.
type CardOption func(*cardConfig)

type cardConfig struct {
	provider string
}

// WithProvider restricts accepted numbers to a single provider.
// An empty name keeps the default of accepting any supported provider.
func WithProvider(name string) CardOption {
	return func(c *cardConfig) { c.provider = name }
}

// IsCreditCard validates card numbers against the provider patterns and the
// Luhn checksum. Spaces and hyphens between digit groups are accepted.
// Values that are not strings are ignored.
//
// Panics if WithProvider names an unknown provider: a misconfigured form must
// fail at startup instead of reporting every input as invalid.
func IsCreditCard(opts ...CardOption) Func {
	var cfg cardConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var pattern *regexp.Regexp
	if cfg.provider != "" {
		p, err := LookupProvider(cfg.provider)
		if err != nil {
			panic(err)
		}
		pattern = cardPatterns[p]
	}

	return func(value any) Errors {
		s, ok := stringValue(value)
		if !ok || s == "" {
			return nil
		}

		sanitized := sanitizer.StripSeparators(s)
		switch {
		case pattern != nil:
			if !pattern.MatchString(sanitized) {
				return Errors{KeyIsCreditCard: {"actualValue": s, "provider": cfg.provider}}
			}
		case !matchesAnyProvider(sanitized):
			return Errors{KeyIsCreditCard: {"actualValue": s}}
		}

		if !IsLuhn(s) {
			return Errors{KeyIsCreditCard: {"actualValue": s, "luhnValid": false}}
		}
		return nil
	}
}

func matchesAnyProvider(number string) bool {
	for _, re := range cardPatterns {
		if re.MatchString(number) {
			return true
		}
	}
	return false
}
