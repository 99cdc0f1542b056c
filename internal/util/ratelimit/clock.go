// Package ratelimit provides debounce and throttle wrappers for functions.
//
// Each wrapper owns its own timer state; wrappers never share it.
// Debounce runs the wrapped function once after calls stop arriving for the
// wait period, with the latest argument. Throttle runs the first call of an
// idle period immediately and drops calls until its cooldown expires.
//
// Functions taking no arguments use struct{} as the argument type.
package ratelimit

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback. Reports whether it was still pending.
	Stop() bool
}

// Clock supplies time and timers to the wrappers.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// SystemClock is the wall clock backed by the time package.
var SystemClock Clock = systemClock{}

type options struct {
	clock Clock
}

// Option configures a wrapper.
type Option func(*options)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{clock: SystemClock}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
