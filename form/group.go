package form

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrymomot/formvalid/pkg/validator"
)

// Group is an ordered set of named controls validated together.
type Group struct {
	mu       sync.RWMutex
	names    []string
	controls map[string]*Control
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{controls: make(map[string]*Control)}
}

// Add registers c under name and returns the group for chaining.
// It panics on an empty name, a nil control or a name already in use.
func (g *Group) Add(name string, c *Control) *Group {
	if name == "" {
		panic("form: control name must not be empty")
	}
	if c == nil {
		panic(fmt.Sprintf("form: control %q is nil", name))
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.controls[name]; ok {
		panic(fmt.Sprintf("form: duplicate control %q", name))
	}
	g.names = append(g.names, name)
	g.controls[name] = c
	return g
}

// Control returns the control registered under name, or nil.
func (g *Group) Control(name string) *Control {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.controls[name]
}

// Names lists the control names in the order they were added.
func (g *Group) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string(nil), g.names...)
}

// Validate runs a pass on every control in order and returns the error
// mappings of the failing ones, nil when all pass.
func (g *Group) Validate(ctx context.Context) map[string]validator.Errors {
	var result map[string]validator.Errors
	for _, name := range g.Names() {
		errs := g.Control(name).Validate(ctx)
		if errs == nil {
			continue
		}
		if result == nil {
			result = make(map[string]validator.Errors)
		}
		result[name] = errs
	}
	return result
}

// Errors returns the error mappings of the failing controls as of their last
// pass, including the passes that follow write-backs. Nil when all pass.
func (g *Group) Errors() map[string]validator.Errors {
	var result map[string]validator.Errors
	for _, name := range g.Names() {
		errs := g.Control(name).Errors()
		if errs == nil {
			continue
		}
		if result == nil {
			result = make(map[string]validator.Errors)
		}
		result[name] = errs
	}
	return result
}

// Valid reports whether every control passed its last pass.
func (g *Group) Valid() bool {
	for _, name := range g.Names() {
		if !g.Control(name).Valid() {
			return false
		}
	}
	return true
}

// SetValues assigns values by control name without running validation, so
// controls that depend on each other are never checked half-updated.
// Call Validate afterwards. Names without a control are reported as
// ErrUnknownControl; the known ones are still set.
func (g *Group) SetValues(values map[string]any) error {
	var errs []error
	for name, value := range values {
		c := g.Control(name)
		if c == nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownControl, name))
			continue
		}
		c.SetValue(value, WithoutValidation())
	}
	return errors.Join(errs...)
}

// Values returns the current value of every control.
func (g *Group) Values() map[string]any {
	names := g.Names()
	values := make(map[string]any, len(names))
	for _, name := range names {
		values[name] = g.Control(name).Value()
	}
	return values
}

// Settle waits for the pending write-backs of every control.
func (g *Group) Settle(ctx context.Context) error {
	var errs []error
	for _, name := range g.Names() {
		if err := g.Control(name).Settle(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
