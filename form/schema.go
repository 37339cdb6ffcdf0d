package form

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formvalid/pkg/sanitizer"
	"github.com/dmitrymomot/formvalid/pkg/validator"
)

// Rule types understood by a Schema besides the validator keys.
const (
	RuleBlacklist     = "blacklist"
	RuleSanitize      = "sanitize"
	RuleIsAfterField  = "isAfterField"
	RuleIsBeforeField = "isBeforeField"
)

// Schema describes a form in YAML:
//
//	name: booking
//	fields:
//	  - name: card
//	    rules:
//	      - type: blacklist
//	        chars: "<>"
//	      - type: isCreditCard
//	        provider: visa
//	  - name: checkout
//	    rules:
//	      - type: isAfterField
//	        field: checkin
type Schema struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Field is one control of a Schema.
type Field struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value,omitempty"`
	Rules []Rule `yaml:"rules,omitempty"`
}

// Rule is one validator of a Field. Type is a validator key (see
// validator.Keys) or one of the Rule* constants; the remaining attributes
// depend on it.
type Rule struct {
	Type             string `yaml:"type"`
	validator.Params `yaml:",inline"`

	// Chars lists the characters removed by a blacklist rule.
	Chars string `yaml:"chars,omitempty"`
	// Steps names the sanitizer transforms of a sanitize rule, in order.
	Steps []string `yaml:"steps,omitempty"`
	// Field is the sibling control compared by isAfterField and isBeforeField.
	Field string `yaml:"field,omitempty"`
}

// LoadSchema decodes and checks a schema read from r.
func LoadSchema(r io.Reader) (*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Schema
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSchema)
		}
		return nil, errors.Join(ErrInvalidSchema, err)
	}
	if err := s.Check(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseSchema is LoadSchema over an in-memory document.
func ParseSchema(data []byte) (*Schema, error) {
	return LoadSchema(bytes.NewReader(data))
}

// Check reports structural problems: missing or duplicate field names,
// unknown rule types and field rules pointing at missing siblings.
// Option values such as providers are checked by Build.
func (s *Schema) Check() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("%w: no fields", ErrInvalidSchema)
	}

	names := make(map[string]struct{}, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: field #%d has no name", ErrInvalidSchema, i+1)
		}
		if _, dup := names[f.Name]; dup {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, f.Name)
		}
		names[f.Name] = struct{}{}
	}

	known := append(validator.Keys(), RuleBlacklist, RuleSanitize, RuleIsAfterField, RuleIsBeforeField)
	for _, f := range s.Fields {
		for _, r := range f.Rules {
			if !slices.Contains(known, r.Type) {
				return fmt.Errorf("%w: field %q: unknown rule type %q", ErrInvalidSchema, f.Name, r.Type)
			}
			if r.Type != RuleIsAfterField && r.Type != RuleIsBeforeField {
				continue
			}
			if _, ok := names[r.Field]; !ok {
				return fmt.Errorf("%w: field %q: %s refers to unknown field %q", ErrInvalidSchema, f.Name, r.Type, r.Field)
			}
			if r.Field == f.Name {
				return fmt.Errorf("%w: field %q: %s refers to itself", ErrInvalidSchema, f.Name, r.Type)
			}
		}
	}
	return nil
}

// BuildOption configures Schema.Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	clock  validator.Clock
	values map[string]any
}

// WithClock sets the clock behind the "now" default of date rules.
func WithClock(clock validator.Clock) BuildOption {
	return func(c *buildConfig) { c.clock = clock }
}

// WithValues overrides the initial field values.
func WithValues(values map[string]any) BuildOption {
	return func(c *buildConfig) { c.values = values }
}

// Build creates a Group with one control per field, in schema order, and
// runs a first validation pass over it. Every error wraps ErrInvalidSchema.
func (s *Schema) Build(opts ...BuildOption) (*Group, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}

	cfg := buildConfig{clock: validator.SystemClock}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := NewGroup()
	for _, f := range s.Fields {
		value := f.Value
		if v, ok := cfg.values[f.Name]; ok {
			value = v
		}
		g.Add(f.Name, NewControl(value))
	}

	for _, f := range s.Fields {
		validators := make([]Validator, 0, len(f.Rules))
		for _, r := range f.Rules {
			v, err := buildRule(g, r, cfg.clock)
			if err != nil {
				return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidSchema, f.Name, err)
			}
			validators = append(validators, v)
		}
		g.Control(f.Name).AddValidators(validators...)
	}

	g.Validate(context.Background())
	return g, nil
}

func buildRule(g *Group, r Rule, clock validator.Clock) (Validator, error) {
	switch r.Type {
	case RuleBlacklist:
		return Blacklist(r.Chars), nil

	case RuleSanitize:
		clean, err := sanitizer.Chain(r.Steps...)
		if err != nil {
			return nil, err
		}
		return Sanitize(clean), nil

	case RuleIsAfterField, RuleIsBeforeField:
		return compareWith(g.Control(r.Field), r.Type == RuleIsAfterField, clock), nil
	}

	fn, err := validator.Build(r.Type, r.Params, clock)
	if err != nil {
		return nil, err
	}
	return Use(fn), nil
}

// compareWith orders a control against a sibling. An empty sibling leaves
// nothing to compare against, so the rule passes until it is filled in.
func compareWith(sibling *Control, after bool, clock validator.Clock) Validator {
	return Dynamic(func(*Control) validator.Func {
		other := sibling.Value()
		if validator.IsEmpty(other) {
			return nil
		}
		opts := []validator.DateOption{
			validator.WithComparisonDate(other),
			validator.WithClock(clock),
		}
		if after {
			return validator.IsAfter(opts...)
		}
		return validator.IsBefore(opts...)
	})
}
