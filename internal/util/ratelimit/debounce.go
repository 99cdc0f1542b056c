package ratelimit

import (
	"sync"
	"time"
)

// DefaultWait is the debounce delay used when wait is not positive.
const DefaultWait = 300 * time.Millisecond

// Debouncer delays fn until calls stop arriving for the wait period.
// It is safe for concurrent use. fn runs on the clock's timer goroutine.
type Debouncer[T any] struct {
	fn    func(T)
	wait  time.Duration
	clock Clock

	mu    sync.Mutex
	timer Timer
	gen   uint64
	arg   T
}

// NewDebouncer wraps fn with a debounce of wait.
func NewDebouncer[T any](fn func(T), wait time.Duration, opts ...Option) *Debouncer[T] {
	if wait <= 0 {
		wait = DefaultWait
	}
	o := buildOptions(opts)
	return &Debouncer[T]{fn: fn, wait: wait, clock: o.clock}
}

// Debounce returns the debounced form of fn.
func Debounce[T any](fn func(T), wait time.Duration, opts ...Option) func(T) {
	return NewDebouncer(fn, wait, opts...).Call
}

// Call cancels any pending invocation and schedules fn(arg) after the wait.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.arg = arg
	d.timer = d.clock.AfterFunc(d.wait, func() { d.fire(gen) })
}

// fire runs fn if gen is still the latest scheduled call. A timer whose Stop
// lost the race against expiry sees a newer gen and does nothing.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.timer == nil {
		d.mu.Unlock()
		return
	}
	arg := d.take()
	d.mu.Unlock()

	d.fn(arg)
}

// take clears the pending state and returns its argument. Caller holds d.mu.
func (d *Debouncer[T]) take() T {
	arg := d.arg
	var zero T
	d.arg = zero
	d.timer = nil
	return arg
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Cancel drops the pending invocation, if any. Reports whether one was dropped.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.gen++
	d.take()
	return true
}

// Flush runs the pending invocation now on the caller's goroutine.
// Reports whether one ran.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return false
	}
	d.timer.Stop()
	d.gen++
	arg := d.take()
	d.mu.Unlock()

	d.fn(arg)
	return true
}
