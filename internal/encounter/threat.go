package encounter

import "github.com/vovakirdan/nightwatch/internal/config"

// Roller is the random source of the threat AI. *rand.Rand satisfies it;
// tests inject scripted sequences.
type Roller interface {
	Float64() float64
}

// Threat is the animatronic. It lives at a discrete location from 0 (first
// camera) up to the office; every advancePeriod ticks it rolls once and
// steps one location closer with probability advanceChance.
type Threat struct {
	cfg      config.ThreatSection
	rng      Roller
	location int
	counter  int
}

// NewThreat creates a threat at location 0.
func NewThreat(cfg config.ThreatSection, rng Roller) Threat {
	return Threat{cfg: cfg, rng: rng}
}

// Update advances the tick counter unless the threat is held at the door.
// Returns true when the threat moved this tick.
func (t *Threat) Update(trapped bool) bool {
	if trapped {
		return false
	}
	t.counter++
	if t.counter <= t.cfg.AdvancePeriod {
		return false
	}
	t.counter = 0
	if t.rng.Float64() >= t.cfg.AdvanceChance {
		return false
	}
	if t.location >= t.cfg.Office {
		return false
	}
	t.location++
	return true
}

// Location returns the current location.
func (t Threat) Location() int {
	return t.location
}

// InOffice reports whether the threat is at the office door.
func (t Threat) InOffice() bool {
	return t.location == t.cfg.Office
}

// Teleport moves the threat directly to loc (clamped). Debug only.
func (t *Threat) Teleport(loc int) {
	t.location = max(0, min(loc, t.cfg.Office))
}

// Repel sends the threat back to location 0. The advance counter is left
// alone; it did not run while the threat was trapped.
func (t *Threat) Repel() {
	t.location = 0
}

// Reset sends the threat back to location 0 and clears the counter.
func (t *Threat) Reset() {
	t.location = 0
	t.counter = 0
}
