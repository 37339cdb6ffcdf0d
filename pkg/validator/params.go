package validator

import (
	"fmt"
	"slices"
)

// Params is the flat, serializable description of a validator's options used
// by configuration files, struct tags and request bodies.
type Params struct {
	// Element is the substring required by contains.
	Element string `json:"element,omitempty" yaml:"element,omitempty"`
	// IgnoreCase makes contains case-insensitive.
	IgnoreCase bool `json:"ignoreCase,omitempty" yaml:"ignoreCase,omitempty"`
	// MinOccurrences overrides the contains default of 1 when set.
	MinOccurrences *int `json:"minOccurrences,omitempty" yaml:"minOccurrences,omitempty"`
	// Comparison is the exact value required by equals.
	Comparison string `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	// ComparisonDate is the bound for isAfter and isBefore; empty means now.
	ComparisonDate string `json:"comparisonDate,omitempty" yaml:"comparisonDate,omitempty"`
	// Provider restricts isCreditCard to one network.
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
}

// Keys lists the validators Build understands, sorted.
func Keys() []string {
	keys := []string{KeyContains, KeyEquals, KeyIsAfter, KeyIsBefore, KeyIsCreditCard, KeyIsLuhnNumber}
	slices.Sort(keys)
	return keys
}

// Build constructs the validator registered under key from p.
// Unlike the constructors it never panics: an unknown key yields
// ErrUnknownValidator and an unknown provider ErrUnknownProvider.
// clock backs the "now" default of the date validators; nil means SystemClock.
func Build(key string, p Params, clock Clock) (Func, error) {
	switch key {
	case KeyContains:
		opts := make([]ContainsOption, 0, 2)
		if p.IgnoreCase {
			opts = append(opts, IgnoreCase())
		}
		if p.MinOccurrences != nil {
			opts = append(opts, MinOccurrences(*p.MinOccurrences))
		}
		return Contains(p.Element, opts...), nil

	case KeyEquals:
		return Equals(p.Comparison), nil

	case KeyIsAfter, KeyIsBefore:
		opts := []DateOption{WithClock(clock)}
		if p.ComparisonDate != "" {
			opts = append(opts, WithComparisonDate(p.ComparisonDate))
		}
		if key == KeyIsAfter {
			return IsAfter(opts...), nil
		}
		return IsBefore(opts...), nil

	case KeyIsCreditCard:
		if p.Provider == "" {
			return IsCreditCard(), nil
		}
		if _, err := LookupProvider(p.Provider); err != nil {
			return nil, err
		}
		return IsCreditCard(WithProvider(p.Provider)), nil

	case KeyIsLuhnNumber:
		return IsLuhnNumber(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, key)
}
