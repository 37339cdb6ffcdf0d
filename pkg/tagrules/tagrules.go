package tagrules

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formvalid/pkg/validator"
)

// Tags registered by Register.
const (
	TagContains   = "contains_text"
	TagEquals     = "equals_text"
	TagAfterDate  = "after_date"
	TagBeforeDate = "before_date"
	TagCardNumber = "card_number"
	TagLuhnNumber = "luhn_number"
)

// ParamSeparator splits the parts of a contains_text parameter.
// Commas and pipes are reserved by the tag syntax itself.
const ParamSeparator = ";"

var tagKeys = map[string]string{
	TagContains:   validator.KeyContains,
	TagEquals:     validator.KeyEquals,
	TagAfterDate:  validator.KeyIsAfter,
	TagBeforeDate: validator.KeyIsBefore,
	TagCardNumber: validator.KeyIsCreditCard,
	TagLuhnNumber: validator.KeyIsLuhnNumber,
}

// Registry exposes the core validators as go-playground struct tags:
//
//	type Payment struct {
//	    Card  string `json:"card" validate:"required,card_number=visa"`
//	    Note  string `json:"note" validate:"contains_text=ref;i;2"`
//	    Until string `json:"until" validate:"after_date"`
//	}
//
// contains_text takes the element, then optionally "i" for ignore case and a
// minimum count. Date tags take an optional comparison date; without one
// they compare against the registry clock.
type Registry struct {
	clock validator.Clock
	funcs sync.Map // tag=param -> validator.Func
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the clock behind after_date and before_date without a parameter.
func WithClock(clock validator.Clock) Option {
	return func(r *Registry) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// New creates a Registry.
func New(opts ...Option) *Registry {
	r := &Registry{clock: validator.SystemClock}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register installs the tags on v and makes field errors use json names.
func (r *Registry) Register(v *playground.Validate) error {
	for tag := range tagKeys {
		if err := v.RegisterValidation(tag, r.validation(tag)); err != nil {
			return fmt.Errorf("tagrules: register %s: %w", tag, err)
		}
	}
	v.RegisterTagNameFunc(jsonTagName)
	return nil
}

// NewValidate returns a go-playground validator with the tags registered.
func (r *Registry) NewValidate() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	if err := r.Register(v); err != nil {
		// Tags are constants; registration only fails on an empty tag name.
		panic(err)
	}
	return v
}

// Explain turns the error of Validate.Struct into error mappings keyed by
// field name. Fields failing one of the registered tags get the mapping the
// core validator produces; other tags are reported under their own name with
// the tag parameter. It returns nil when err holds no field errors.
func (r *Registry) Explain(err error) map[string]validator.Errors {
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return nil
	}

	result := make(map[string]validator.Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		var errs validator.Errors
		if _, ok := tagKeys[fe.Tag()]; ok {
			errs = r.funcFor(fe.Tag(), fe.Param())(normalize(reflect.ValueOf(fe.Value())))
		}
		if errs == nil {
			errs = validator.Errors{fe.Tag(): {"param": fe.Param(), "actualValue": fe.Value()}}
		}
		result[fe.Field()] = validator.Merge(result[fe.Field()], errs)
	}
	return result
}

func (r *Registry) validation(tag string) playground.Func {
	return func(fl playground.FieldLevel) bool {
		return r.funcFor(tag, fl.Param())(normalize(fl.Field())) == nil
	}
}

// funcFor returns the cached validator for tag and param, building it on first use.
// An unknown card provider panics here, the first time the tag runs.
func (r *Registry) funcFor(tag, param string) validator.Func {
	key := tag + "=" + param
	if fn, ok := r.funcs.Load(key); ok {
		return fn.(validator.Func)
	}
	fn, _ := r.funcs.LoadOrStore(key, r.build(tag, param))
	return fn.(validator.Func)
}

func (r *Registry) build(tag, param string) validator.Func {
	switch tag {
	case TagContains:
		element, opts := parseContains(param)
		return validator.Contains(element, opts...)
	case TagEquals:
		return validator.Equals(param)
	case TagAfterDate, TagBeforeDate:
		opts := []validator.DateOption{validator.WithClock(r.clock)}
		if param != "" {
			opts = append(opts, validator.WithComparisonDate(param))
		}
		if tag == TagAfterDate {
			return validator.IsAfter(opts...)
		}
		return validator.IsBefore(opts...)
	case TagCardNumber:
		if param == "" {
			return validator.IsCreditCard()
		}
		return validator.IsCreditCard(validator.WithProvider(param))
	case TagLuhnNumber:
		return validator.IsLuhnNumber()
	}
	panic(fmt.Sprintf("tagrules: unknown tag %q", tag))
}

// parseContains reads "element[;i][;min]". The flag and the count may come in
// either order; anything else is kept as part of the element.
func parseContains(param string) (string, []validator.ContainsOption) {
	parts := strings.Split(param, ParamSeparator)
	var opts []validator.ContainsOption
	for len(parts) > 1 {
		last := parts[len(parts)-1]
		if last == "i" {
			opts = append(opts, validator.IgnoreCase())
		} else if n, err := strconv.Atoi(last); err == nil {
			opts = append(opts, validator.MinOccurrences(n))
		} else {
			break
		}
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, ParamSeparator), opts
}

// normalize unwraps pointers and named string types so the core validators,
// which only treat plain strings as card numbers, see the text.
func normalize(v reflect.Value) any {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}
	if v.Kind() == reflect.String {
		return v.String()
	}
	if v.CanInterface() {
		return v.Interface()
	}
	return nil
}

func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
