// Package encounter implements the night: the game-level state machine
// (menu, active night, jumpscare, win) and the timing engine it drives each
// tick (flash, power, threat AI and office derivation).
//
// The package is single-threaded. The platform applies input with Apply,
// then calls Step once per simulation tick, then renders Snapshot.
package encounter

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nightwatch/internal/config"
	"github.com/vovakirdan/nightwatch/internal/core"
)

// Options carries the collaborators of a Game. Zero values are replaced
// with working defaults.
type Options struct {
	Clock  core.Clock  // defaults to core.WallClock
	Rand   Roller      // defaults to a time-seeded *rand.Rand
	Cues   CueSink     // defaults to NopSink
	Logger *log.Logger // defaults to a discarding logger
	Debug  bool        // enables the threat teleport actions
}

// Game is the game-level state machine. It owns the current Encounter.
type Game struct {
	cfg    config.NightConfig
	clock  core.Clock
	cues   CueSink
	logger *log.Logger
	debug  bool

	state         State
	enc           Encounter
	cause         LossCause
	jumpscare     Stopwatch
	victoryPlayed bool
	quitting      bool
	finished      *Summary
}

// New creates a game sitting in the menu.
func New(cfg config.NightConfig, opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = core.WallClock{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Cues == nil {
		opts.Cues = NopSink{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Game{
		cfg:    cfg,
		clock:  opts.Clock,
		cues:   opts.Cues,
		logger: opts.Logger,
		debug:  opts.Debug,
		state:  StateMenu,
		enc:    newEncounter(cfg, opts.Rand),
	}
}

// Launch announces the menu. Call once when the program starts.
func (g *Game) Launch() {
	g.cues.Play(CueMenuLoop)
}

// Apply executes one player command immediately. Returns true if the
// command changed anything.
func (g *Game) Apply(a core.Action) bool {
	if a == core.ActionNone {
		return false
	}
	if a == core.ActionQuit {
		g.quitting = true
		g.cues.Play(CueSilence)
		g.logger.Debug("quit requested", "state", g.state)
		return true
	}

	now := g.clock.Now()
	switch g.state {
	case StateMenu:
		if a == core.ActionStart {
			g.start(now)
			return true
		}
	case StateActive:
		return g.command(now, a)
	case StateJumpscare:
		if g.jumpscare.Reached(now, g.cfg.Jumpscare.Cooldown) {
			g.toMenu()
			return true
		}
	case StateWin:
		g.toMenu()
		return true
	}
	return false
}

// command handles input during the night.
func (g *Game) command(now time.Time, a core.Action) bool {
	e := &g.enc

	if idx, ok := a.CameraIndex(); ok {
		if !e.camera.Select(idx) {
			return false
		}
		g.cues.Play(CueCameraSwitch)
		return true
	}

	switch a {
	case core.ActionToggleDoor:
		closed := e.door.Toggle()
		e.office.DoorToggled(closed)
		if closed {
			g.cues.Play(CueDoorClose)
		}
		return true

	case core.ActionToggleCamera:
		if e.camera.Toggle() {
			g.cues.Play(CueCameraOn)
		} else {
			g.cues.Play(CueCameraOff)
		}
		return true

	case core.ActionFlash:
		if !e.flash.Trigger(now) {
			return false
		}
		g.cues.Play(CueFlash)
		return true

	case core.ActionDebugThreatNear, core.ActionDebugThreatOffice:
		if !g.debug {
			return false
		}
		loc := g.cfg.Threat.Office
		if a == core.ActionDebugThreatNear {
			loc--
		}
		e.threat.Teleport(loc)
		g.logger.Debug("threat teleported", "location", loc)
		return true
	}
	return false
}

// Step runs one simulation tick. Only the active night and the first tick
// of the win screen do any work.
func (g *Game) Step() StepResult {
	now := g.clock.Now()

	if g.state == StateActive {
		g.tick(now)
	}
	if g.state == StateWin && !g.victoryPlayed {
		g.cues.Play(CueSilence)
		g.cues.Play(CueVictory)
		g.victoryPlayed = true
	}

	result := StepResult{Snapshot: g.snapshotAt(now), Finished: g.finished}
	g.finished = nil
	return result
}

// tick advances the night in a fixed order: clock, flash, power, power
// loss, win, threat, office.
func (g *Game) tick(now time.Time) {
	e := &g.enc

	e.elapsed = now.Sub(e.started)
	e.flash.Update(now)

	e.power.Drain(e.door.Closed(), e.camera.Active(), e.flash.Active())
	if e.power.Depleted() {
		g.lose(now, CausePower)
		return
	}

	if e.elapsed >= g.cfg.Night.Duration {
		g.win()
		return
	}

	if e.threat.Update(e.office.Trapped()) {
		g.logger.Debug("threat advanced", "location", e.threat.Location())
	}

	switch e.office.Update(now, &e.threat, &e.door, g.cues) {
	case OfficeRepelled:
		e.repels++
		g.logger.Info("threat repelled", "repels", e.repels, "elapsed", e.elapsed.Round(time.Millisecond))
	case OfficeBreach:
		g.lose(now, CauseThreat)
	}
}

func (g *Game) start(now time.Time) {
	g.enc.Reset(now)
	g.cause = CauseNone
	g.jumpscare.Stop()
	g.victoryPlayed = false
	g.finished = nil
	g.state = StateActive

	g.cues.Play(CueSilence)
	g.cues.Play(CueOfficeLoop)
	g.logger.Info("night started", "id", g.enc.id)
}

func (g *Game) lose(now time.Time, cause LossCause) {
	g.state = StateJumpscare
	g.cause = cause
	g.jumpscare.Start(now)
	g.cues.Play(CueJumpscare)
	g.finish(false)
	g.logger.Info("jumpscare", "id", g.enc.id, "cause", cause, "elapsed", g.enc.elapsed.Round(time.Millisecond))
}

func (g *Game) win() {
	g.state = StateWin
	g.finish(true)
	g.logger.Info("night survived", "id", g.enc.id, "power", g.enc.power.Level())
}

func (g *Game) finish(won bool) {
	e := &g.enc
	g.finished = &Summary{
		ID:        e.id,
		Won:       won,
		Cause:     g.cause,
		Survived:  e.elapsed,
		PowerLeft: e.power.Level(),
		Repels:    e.repels,
		StartedAt: e.started,
	}
}

func (g *Game) toMenu() {
	g.state = StateMenu
	g.jumpscare.Stop()
	g.cues.Play(CueMenuLoop)
}

// Snapshot returns the current read-only view.
func (g *Game) Snapshot() Snapshot {
	return g.snapshotAt(g.clock.Now())
}

func (g *Game) snapshotAt(now time.Time) Snapshot {
	e := &g.enc

	remaining := g.cfg.Night.Duration - e.elapsed
	if remaining < 0 {
		remaining = 0
	}

	cameraName := ""
	if sel := e.camera.Selected(); sel < len(g.cfg.Cameras) {
		cameraName = g.cfg.Cameras[sel]
	}

	return Snapshot{
		State:          g.state,
		Office:         e.office.State(),
		Power:          e.power.Level(),
		PowerPercent:   e.power.Percent(),
		Elapsed:        e.elapsed,
		Remaining:      remaining,
		ThreatLocation: e.threat.Location(),
		DoorClosed:     e.door.Closed(),
		CameraActive:   e.camera.Active(),
		Camera:         e.camera.Selected(),
		CameraName:     cameraName,
		Flashing:       e.flash.Active(),
		FlashPhase:     e.flash.Phase(),
		FlashIntensity: e.flash.Intensity(),
		Cause:          g.cause,
		CanAcknowledge: g.state == StateWin ||
			(g.state == StateJumpscare && g.jumpscare.Reached(now, g.cfg.Jumpscare.Cooldown)),
		Repels:      e.repels,
		EncounterID: e.id,
		Debug:       g.debug,
	}
}

// State returns the game-level state.
func (g *Game) State() State {
	return g.state
}

// Quitting reports whether the player asked to leave.
func (g *Game) Quitting() bool {
	return g.quitting
}

// Config returns the night configuration the game runs with.
func (g *Game) Config() config.NightConfig {
	return g.cfg
}
