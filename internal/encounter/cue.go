package encounter

// Cue is a discrete audio event emitted by the engine.
// The engine only announces cues; playback, looping and volume belong to
// the CueSink.
type Cue int

const (
	CueMenuLoop     Cue = iota // start the menu ambient loop
	CueOfficeLoop              // start the office ambient loop
	CueSilence                 // stop every loop and one-shot
	CueDoorClose               // door slams / steps behind the door
	CueCameraOn                // monitor raised
	CueCameraOff               // monitor lowered
	CueCameraSwitch            // feed changed
	CueFlash                   // flashlight shutter
	CueJumpscare               // jumpscare alarm
	CueVictory                 // 6 AM jingle
)

var cueKeys = [...]string{
	CueMenuLoop:     "menu_loop",
	CueOfficeLoop:   "office_loop",
	CueSilence:      "silence",
	CueDoorClose:    "door_close",
	CueCameraOn:     "camera_on",
	CueCameraOff:    "camera_off",
	CueCameraSwitch: "camera_switch",
	CueFlash:        "flash",
	CueJumpscare:    "jumpscare",
	CueVictory:      "victory",
}

// Key returns the config key of the cue (audio.cues.<key>).
func (c Cue) Key() string {
	if c < 0 || int(c) >= len(cueKeys) {
		return "unknown"
	}
	return cueKeys[c]
}

// String implements fmt.Stringer.
func (c Cue) String() string {
	return c.Key()
}

// AllCues lists every cue in declaration order.
func AllCues() []Cue {
	cues := make([]Cue, len(cueKeys))
	for i := range cues {
		cues[i] = Cue(i)
	}
	return cues
}

// CueSink receives cues. Implementations must not block and must tolerate
// cues they cannot realize.
type CueSink interface {
	Play(c Cue)
}

// CueFunc adapts a function to CueSink.
type CueFunc func(c Cue)

// Play calls f(c).
func (f CueFunc) Play(c Cue) { f(c) }

// NopSink discards every cue.
type NopSink struct{}

// Play does nothing.
func (NopSink) Play(Cue) {}
