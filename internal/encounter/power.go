package encounter

import (
	"github.com/vovakirdan/nightwatch/internal/config"
	"github.com/vovakirdan/nightwatch/internal/core"
)

// Power is the office battery. It only ever drains during a night; Reset
// refills it.
type Power struct {
	rates config.PowerSection
	level float64
}

// NewPower creates a full battery with the given drain rates.
func NewPower(rates config.PowerSection) Power {
	return Power{rates: rates, level: rates.Initial}
}

// Drain subtracts one tick's worth of drain for every active system.
func (p *Power) Drain(doorClosed, cameraActive, flashActive bool) {
	var d float64
	if doorClosed {
		d += p.rates.DoorDrain
	}
	if cameraActive {
		d += p.rates.CameraDrain
	}
	if flashActive {
		d += p.rates.FlashDrain
	}
	p.level -= d
}

// Depleted reports whether the battery is empty.
func (p Power) Depleted() bool {
	return p.level <= 0
}

// Level returns the remaining power, floored at 0.
func (p Power) Level() float64 {
	if p.level < 0 {
		return 0
	}
	return p.level
}

// Percent returns the remaining power as a fraction of the initial charge.
func (p Power) Percent() float64 {
	if p.rates.Initial <= 0 {
		return 0
	}
	return core.ClampF(p.Level()/p.rates.Initial, 0, 1)
}

// Reset refills the battery.
func (p *Power) Reset() {
	p.level = p.rates.Initial
}
