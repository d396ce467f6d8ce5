package core

import "time"

// Clock provides the current time to the simulation.
// All timers in the game are differences between two Now() readings.
type Clock interface {
	Now() time.Time
}

// WallClock reads the system clock.
type WallClock struct{}

// Now returns time.Now().
func (WallClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to.
// The platform advances it by one tick interval per simulation step, which
// makes simulated time independent of how long rendering takes.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current reading.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored so the
// clock stays monotonic.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now = c.now.Add(d)
	}
}
