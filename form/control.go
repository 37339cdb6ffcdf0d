package form

import (
	"context"
	"reflect"
	"slices"
	"sync"

	"github.com/dmitrymomot/formvalid/pkg/async"
	"github.com/dmitrymomot/formvalid/pkg/validator"
)

// Control holds a single form value together with its validators and the
// errors of the last validation pass. It is safe for concurrent use.
type Control struct {
	mu         sync.Mutex
	value      any
	errors     validator.Errors
	validators []Validator
	listeners  []listener
	nextID     int
	pending    []*async.Future[bool]
	passing    bool
	scheduled  []writeBack

	// pass serializes validation passes.
	pass sync.Mutex
}

type writeBack struct {
	from, to any
}

type listener struct {
	id int
	fn func(any)
}

// NewControl creates a control and runs a first validation pass.
func NewControl(value any, validators ...Validator) *Control {
	c := &Control{
		value:      value,
		validators: validators,
	}
	c.Validate(context.Background())
	return c
}

// Value returns the current value.
func (c *Control) Value() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// SetOption configures SetValue.
type SetOption func(*setConfig)

type setConfig struct {
	emit     bool
	validate bool
}

// WithoutEmit suppresses change notifications.
func WithoutEmit() SetOption {
	return func(c *setConfig) { c.emit = false }
}

// WithoutValidation skips the validation pass that normally follows a change.
func WithoutValidation() SetOption {
	return func(c *setConfig) { c.validate = false }
}

// SetValue replaces the value, notifies OnChange listeners and revalidates.
func (c *Control) SetValue(value any, opts ...SetOption) {
	cfg := setConfig{emit: true, validate: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	c.mu.Lock()
	c.value = value
	var listeners []func(any)
	if cfg.emit {
		listeners = c.snapshotListeners()
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(value)
	}
	if cfg.validate {
		c.Validate(context.Background())
	}
}

// OnChange registers fn to be called with the new value after every emitting
// SetValue. The returned function removes the listener.
func (c *Control) OnChange(fn func(value any)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, listener{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.listeners = slices.DeleteFunc(c.listeners, func(l listener) bool { return l.id == id })
	}
}

// AddValidators appends validators. They take effect on the next pass.
func (c *Control) AddValidators(validators ...Validator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.validators = append(c.validators, validators...)
}

// Validate runs every validator in order, merges their error mappings and
// stores the result. Write-backs scheduled during the pass start once it is
// over; Settle waits for them.
func (c *Control) Validate(ctx context.Context) validator.Errors {
	c.pass.Lock()
	defer c.pass.Unlock()

	c.mu.Lock()
	validators := append([]Validator(nil), c.validators...)
	c.passing = true
	c.mu.Unlock()

	results := make([]validator.Errors, 0, len(validators))
	for _, v := range validators {
		results = append(results, v.Validate(c))
	}
	errs := validator.Merge(results...)

	c.mu.Lock()
	c.errors = errs
	c.passing = false
	scheduled := c.scheduled
	c.scheduled = nil
	c.mu.Unlock()

	c.flushWriteBacks(ctx, scheduled)
	return errs
}

// Errors returns the error mapping of the last pass, nil when it passed.
func (c *Control) Errors() validator.Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors
}

// Valid reports whether the last pass found no errors.
func (c *Control) Valid() bool {
	return len(c.Errors()) == 0
}

// Settle waits until every write-back scheduled so far has been applied,
// including those scheduled by the passes that follow a write-back.
func (c *Control) Settle(ctx context.Context) error {
	for {
		c.mu.Lock()
		c.pending = dropComplete(c.pending)
		pending := c.pending
		c.mu.Unlock()

		if len(pending) == 0 {
			return nil
		}
		if _, err := async.WaitAll(ctx, pending...); err != nil {
			return err
		}
	}
}

// writeBack schedules to to replace from once the current pass is over.
// Outside a pass it is started right away.
func (c *Control) writeBack(from, to any) {
	wb := writeBack{from: from, to: to}

	c.mu.Lock()
	if c.passing {
		c.scheduled = append(c.scheduled, wb)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.flushWriteBacks(context.Background(), []writeBack{wb})
}

// flushWriteBacks starts the write-back of a pass. Every sanitizer saw the
// same starting value, so the last scheduled result wins. A successful swap
// is followed by a silent pass so the errors describe the stored value.
func (c *Control) flushWriteBacks(ctx context.Context, scheduled []writeBack) {
	if len(scheduled) == 0 {
		return
	}
	wb := scheduled[len(scheduled)-1]

	// Write-backs belong to the value, not to the caller's request.
	future := async.Async(context.WithoutCancel(ctx), wb, func(ctx context.Context, wb writeBack) (bool, error) {
		if !c.compareAndSwap(wb.from, wb.to) {
			return false, nil
		}
		c.Validate(ctx)
		return true, nil
	})

	c.mu.Lock()
	c.pending = append(c.pending, future)
	c.mu.Unlock()
}

// compareAndSwap stores to only if the value is still from, so a write-back
// never overwrites a newer SetValue.
func (c *Control) compareAndSwap(from, to any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !reflect.DeepEqual(c.value, from) {
		return false
	}
	c.value = to
	return true
}

func (c *Control) snapshotListeners() []func(any) {
	listeners := make([]func(any), 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l.fn)
	}
	return listeners
}

// dropComplete returns a new slice, never aliasing futures, which Settle may be iterating.
func dropComplete(futures []*async.Future[bool]) []*async.Future[bool] {
	kept := make([]*async.Future[bool], 0, len(futures))
	for _, f := range futures {
		if !f.IsComplete() {
			kept = append(kept, f)
		}
	}
	return kept
}
