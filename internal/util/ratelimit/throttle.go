package ratelimit

import (
	"sync"
	"time"
)

// DefaultLimit is the throttle cooldown used when limit is not positive.
const DefaultLimit = 100 * time.Millisecond

// Throttler runs fn at most once per cooldown window, on the leading edge.
// Calls during the cooldown are dropped, not queued. The only state is the
// cooldown deadline, so no timer outlives a call.
type Throttler[T any] struct {
	fn    func(T)
	limit time.Duration
	clock Clock

	mu    sync.Mutex
	until time.Time
}

// NewThrottler wraps fn with a cooldown of limit.
func NewThrottler[T any](fn func(T), limit time.Duration, opts ...Option) *Throttler[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	o := buildOptions(opts)
	return &Throttler[T]{fn: fn, limit: limit, clock: o.clock}
}

// Throttle returns the throttled form of fn.
func Throttle[T any](fn func(T), limit time.Duration, opts ...Option) func(T) {
	t := NewThrottler(fn, limit, opts...)
	return func(arg T) { t.Call(arg) }
}

// Call runs fn(arg) on the caller's goroutine unless a cooldown is open.
// Reports whether fn ran.
func (t *Throttler[T]) Call(arg T) bool {
	t.mu.Lock()
	now := t.clock.Now()
	if now.Before(t.until) {
		t.mu.Unlock()
		return false
	}
	t.until = now.Add(t.limit)
	t.mu.Unlock()

	t.fn(arg)
	return true
}

// Reset closes the current cooldown so the next call runs immediately.
func (t *Throttler[T]) Reset() {
	t.mu.Lock()
	t.until = time.Time{}
	t.mu.Unlock()
}
