package encounter

import (
	"time"

	"github.com/vovakirdan/nightwatch/internal/config"
)

// OfficeState is what the office currently looks like.
type OfficeState int

const (
	OfficeDark          OfficeState = iota // base layer, before the first derivation
	OfficeNormal                           // door open, nobody there
	OfficeThreatPresent                    // threat at the open door
	OfficeTrapped                          // threat held behind the closed door
	OfficeFalseAlarm                       // door closed, nobody there
)

// String implements fmt.Stringer.
func (s OfficeState) String() string {
	switch s {
	case OfficeDark:
		return "dark"
	case OfficeNormal:
		return "normal"
	case OfficeThreatPresent:
		return "threat-present"
	case OfficeTrapped:
		return "trapped"
	case OfficeFalseAlarm:
		return "false-alarm"
	default:
		return "unknown"
	}
}

// OfficeResult is what one office update decided.
type OfficeResult int

const (
	OfficeSteady   OfficeResult = iota
	OfficeRepelled              // trapped window elapsed, threat sent back
	OfficeBreach                // warning window elapsed with the door open
)

// Office derives the office state from the threat location and the door
// every tick. Besides the derived state it keeps the three edge flags and
// the two dwell stopwatches.
type Office struct {
	cfg      config.OfficeSection
	state    OfficeState
	present  bool // threat has been seen in the office
	trapped  bool // door closed on the threat
	cueDone  bool // door cue already played for this closed interval
	presence Stopwatch
	held     Stopwatch
}

// NewOffice creates a dark office.
func NewOffice(cfg config.OfficeSection) Office {
	return Office{cfg: cfg}
}

// Update re-derives the office at now. It may reopen the door and send the
// threat back (OfficeRepelled), or report that the threat got in
// (OfficeBreach).
func (o *Office) Update(now time.Time, threat *Threat, door *Door, cues CueSink) OfficeResult {
	if !threat.InOffice() {
		switch {
		case o.present:
			o.present = false
			o.trapped = false
			o.cueDone = false
			o.presence.Stop()
			o.held.Stop()
			door.Open()
		case door.Closed():
			o.state = OfficeFalseAlarm
			o.playDoorCue(cues)
		default:
			o.state = OfficeNormal
			o.cueDone = false
		}
		return OfficeSteady
	}

	if !o.present {
		o.present = true
		o.presence.Start(now)
		o.trapped = false
		o.held.Stop()
	}

	if !door.Closed() {
		o.state = OfficeThreatPresent
		o.trapped = false
		o.held.Stop()
		if o.presence.Reached(now, o.cfg.WarningWindow) {
			return OfficeBreach
		}
		return OfficeSteady
	}

	o.state = OfficeTrapped
	if !o.trapped {
		o.trapped = true
		o.held.Start(now)
		o.playDoorCue(cues)
	}
	if o.held.Reached(now, o.cfg.TrappedWindow) {
		threat.Repel()
		door.Open()
		o.present = false
		o.trapped = false
		o.cueDone = false
		o.presence.Stop()
		o.held.Stop()
		o.state = OfficeNormal
		return OfficeRepelled
	}
	return OfficeSteady
}

func (o *Office) playDoorCue(cues CueSink) {
	if o.cueDone {
		return
	}
	cues.Play(CueDoorClose)
	o.cueDone = true
}

// DoorToggled records a manual door toggle. Closing the door by hand plays
// the cue itself, so the derivation must not play it again; opening re-arms
// it.
func (o *Office) DoorToggled(closed bool) {
	o.cueDone = closed
}

// State returns the derived office state.
func (o Office) State() OfficeState {
	return o.state
}

// Trapped reports whether the threat is currently held at the door.
func (o Office) Trapped() bool {
	return o.trapped
}

// Present reports whether the threat has been marked as in the office.
func (o Office) Present() bool {
	return o.present
}

// Reset darkens the office and clears every flag and stopwatch.
func (o *Office) Reset() {
	*o = Office{cfg: o.cfg}
}
