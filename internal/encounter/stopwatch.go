package encounter

import "time"

// Stopwatch measures time since it was started. A stopped stopwatch has no
// reading, so a stale start time can never leak into a new measurement.
type Stopwatch struct {
	start   time.Time
	running bool
}

// Start (re)starts the stopwatch at now.
func (s *Stopwatch) Start(now time.Time) {
	s.start = now
	s.running = true
}

// Stop clears the stopwatch.
func (s *Stopwatch) Stop() {
	*s = Stopwatch{}
}

// Running reports whether the stopwatch has been started and not stopped.
func (s Stopwatch) Running() bool {
	return s.running
}

// Elapsed returns the time since Start. ok is false when not running.
func (s Stopwatch) Elapsed(now time.Time) (d time.Duration, ok bool) {
	if !s.running {
		return 0, false
	}
	return now.Sub(s.start), true
}

// Reached reports whether the stopwatch is running and at least window has
// passed.
func (s Stopwatch) Reached(now time.Time, window time.Duration) bool {
	d, ok := s.Elapsed(now)
	return ok && d >= window
}
