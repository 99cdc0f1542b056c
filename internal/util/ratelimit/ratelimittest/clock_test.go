package ratelimittest

import (
	"slices"
	"testing"
	"time"
)

var start = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestClock_FiresInDeadlineThenScheduleOrder(t *testing.T) {
	c := NewClock(start)
	var fired []string
	var at []time.Duration
	record := func(name string) func() {
		return func() {
			fired = append(fired, name)
			at = append(at, c.Now().Sub(start))
		}
	}

	c.AfterFunc(30*time.Millisecond, record("late"))
	c.AfterFunc(10*time.Millisecond, record("first"))
	c.AfterFunc(10*time.Millisecond, record("second"))

	c.Advance(20 * time.Millisecond)
	if !slices.Equal(fired, []string{"first", "second"}) {
		t.Fatalf("fired = %v", fired)
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", c.Pending())
	}

	c.Advance(time.Second)
	if !slices.Equal(fired, []string{"first", "second", "late"}) {
		t.Fatalf("fired = %v", fired)
	}
	if !slices.Equal(at, []time.Duration{10 * time.Millisecond, 10 * time.Millisecond, 30 * time.Millisecond}) {
		t.Errorf("fired at %v", at)
	}
	if got := c.Now().Sub(start); got != 1020*time.Millisecond {
		t.Errorf("Now() = +%v", got)
	}
}

func TestClock_Stop(t *testing.T) {
	c := NewClock(start)
	ran := 0
	a := c.AfterFunc(time.Second, func() { ran++ })
	c.AfterFunc(2*time.Second, func() { ran++ })

	if !a.Stop() {
		t.Fatal("Stop on pending timer reported false")
	}
	if a.Stop() {
		t.Error("second Stop reported true")
	}
	if c.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", c.Pending())
	}

	c.Advance(3 * time.Second)
	if ran != 1 {
		t.Errorf("ran = %d, want 1", ran)
	}
}

func TestClock_CallbackCanReschedule(t *testing.T) {
	c := NewClock(start)
	var ticks []time.Duration
	var tick func()
	tick = func() {
		ticks = append(ticks, c.Now().Sub(start))
		if len(ticks) < 3 {
			c.AfterFunc(time.Second, tick)
		}
	}
	c.AfterFunc(time.Second, tick)

	c.Advance(10 * time.Second)
	if !slices.Equal(ticks, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}) {
		t.Errorf("ticks = %v", ticks)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d", c.Pending())
	}
}
