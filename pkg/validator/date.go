package validator

import (
	"strings"
	"time"
)

// Clock supplies the current instant for validators whose default
// comparison date is "now".
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// DateOption configures IsAfter and IsBefore.
type DateOption func(*dateConfig)

type dateConfig struct {
	comparison any
	clock      Clock
	location   *time.Location
}

// WithComparisonDate sets the date to compare against. Accepts time.Time,
// *time.Time or a string in any layout understood by ParseDate.
// When unset or empty the comparison is the clock's current instant.
func WithComparisonDate(date any) DateOption {
	return func(c *dateConfig) { c.comparison = date }
}

// WithClock replaces the system clock. Nil is ignored.
func WithClock(clock Clock) DateOption {
	return func(c *dateConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLocation sets the location for date-times written without a zone.
// Nil is ignored. Defaults to time.Local.
func WithLocation(loc *time.Location) DateOption {
	return func(c *dateConfig) {
		if loc != nil {
			c.location = loc
		}
	}
}

// IsAfter validates that the value is strictly after the comparison date.
// Values or comparison dates that cannot be parsed are invalid.
func IsAfter(opts ...DateOption) Func {
	return compareDates(KeyIsAfter, time.Time.After, opts)
}

// IsBefore validates that the value is strictly before the comparison date.
// Values or comparison dates that cannot be parsed are invalid.
func IsBefore(opts ...DateOption) Func {
	return compareDates(KeyIsBefore, time.Time.Before, opts)
}

func compareDates(key string, holds func(value, comparison time.Time) bool, opts []DateOption) Func {
	cfg := dateConfig{clock: SystemClock, location: time.Local}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(value any) Errors {
		if IsEmpty(value) {
			return nil
		}

		comparison := cfg.comparison
		if IsEmpty(comparison) {
			comparison = cfg.clock.Now()
		}

		c, cok := ParseDate(comparison, cfg.location)
		v, vok := ParseDate(value, cfg.location)
		if cok && vok && holds(v, c) {
			return nil
		}

		return Errors{key: {
			"comparisonDate": comparison,
			"actualValue":    value,
		}}
	}
}

var (
	// ISO 8601 calendar dates without a time are UTC.
	utcLayouts = []string{
		time.DateOnly,
		"2006-01",
		"2006",
	}

	// Layouts carrying their own offset or zone.
	zonedLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04Z07:00",
		"2006-01-02 15:04:05Z07:00",
		time.RFC1123Z,
		time.RFC1123,
		time.RFC850,
		time.RFC822Z,
		time.RFC822,
		time.UnixDate,
		time.RubyDate,
		"Mon Jan 02 2006 15:04:05 GMT-0700",
		"Mon, 2 Jan 2006 15:04:05 -0700",
	}

	// Zone-less date-times and common locale formats, read in the configured location.
	localLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		time.DateTime,
		"2006-01-02 15:04",
		"2006/01/02",
		"2006/01/02 15:04:05",
		"1/2/2006",
		"1/2/2006 15:04:05",
		"1/2/2006 15:04",
		"Jan 2, 2006",
		"Jan 2, 2006 15:04:05",
		"January 2, 2006",
		"January 2, 2006 15:04:05",
		"Jan 2 2006",
		"2 Jan 2006",
		"2 January 2006",
		"Mon, 2 Jan 2006",
		"Mon Jan 2 2006",
		time.ANSIC,
	}
)

// ParseDate converts v to an instant. time.Time values are used as-is, other
// values are coerced to strings and parsed as ISO 8601 or one of the common
// locale layouts. Zone-less date-times are read in loc (time.Local when nil);
// plain ISO dates are UTC. ok is false for empty or unparseable input.
func ParseDate(v any, loc *time.Location) (t time.Time, ok bool) {
	switch d := v.(type) {
	case time.Time:
		return d, !d.IsZero()
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return *d, true
	}

	s := strings.TrimSpace(Stringify(v))
	if s == "" {
		return time.Time{}, false
	}
	// Drop the "(Zone Name)" suffix produced by JavaScript's Date.toString.
	if i := strings.Index(s, " ("); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}

	if loc == nil {
		loc = time.Local
	}

	for _, layout := range utcLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
