package core

import "time"

// Clock is the time source for elapsed-time counters.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a clock that only moves when told to. Used by tests and
// headless runs for deterministic timers.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// TickClock derives time from a tick counter at a fixed tick rate.
// Each call to Tick advances the clock by exactly one tick interval.
type TickClock struct {
	start    time.Time
	ticks    int64
	interval time.Duration
}

// NewTickClock creates a tick-driven clock.
func NewTickClock(start time.Time, tickRate int) *TickClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickClock{
		start:    start,
		interval: time.Second / time.Duration(tickRate),
	}
}

// Tick advances the clock by one tick.
func (c *TickClock) Tick() {
	c.ticks++
}

// Now returns start + ticks*interval.
func (c *TickClock) Now() time.Time {
	return c.start.Add(time.Duration(c.ticks) * c.interval)
}
