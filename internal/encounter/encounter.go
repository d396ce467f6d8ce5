package encounter

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/nightwatch/internal/config"
)

// Encounter holds everything that belongs to one night: the clock, the
// battery, the threat, the office, the flash, the door and the monitor.
// Reset puts all of it back to the start of a night at once.
type Encounter struct {
	id      uuid.UUID
	started time.Time
	elapsed time.Duration
	repels  int

	power  Power
	threat Threat
	office Office
	flash  Flash
	door   Door
	camera Camera
}

func newEncounter(cfg config.NightConfig, rng Roller) Encounter {
	return Encounter{
		power:  NewPower(cfg.Power),
		threat: NewThreat(cfg.Threat, rng),
		office: NewOffice(cfg.Office),
		flash:  NewFlash(cfg.Flash.FadeIn, cfg.Flash.FadeOut),
		camera: NewCamera(len(cfg.Cameras)),
	}
}

// Reset starts a fresh night at now with a new id.
func (e *Encounter) Reset(now time.Time) {
	e.id = uuid.New()
	e.started = now
	e.elapsed = 0
	e.repels = 0
	e.power.Reset()
	e.threat.Reset()
	e.office.Reset()
	e.flash.Reset()
	e.door = Door{}
	e.camera.Reset()
}

// ID returns the encounter id.
func (e *Encounter) ID() uuid.UUID {
	return e.id
}

// Elapsed returns the time survived so far.
func (e *Encounter) Elapsed() time.Duration {
	return e.elapsed
}
