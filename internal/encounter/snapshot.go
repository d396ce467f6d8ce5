package encounter

import (
	"time"

	"github.com/google/uuid"
)

// State is the game-level state.
type State int

const (
	StateMenu State = iota
	StateActive
	StateJumpscare
	StateWin
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateActive:
		return "active"
	case StateJumpscare:
		return "jumpscare"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// LossCause says why a night was lost.
type LossCause int

const (
	CauseNone   LossCause = iota
	CausePower            // battery ran out
	CauseThreat           // threat got in through the open door
)

// String implements fmt.Stringer.
func (c LossCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CausePower:
		return "power"
	case CauseThreat:
		return "threat"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only view of the game for the presentation layer.
type Snapshot struct {
	State          State
	Office         OfficeState
	Power          float64 // Remaining power, floored at 0
	PowerPercent   float64 // Remaining power as a fraction of the initial charge
	Elapsed        time.Duration
	Remaining      time.Duration
	ThreatLocation int
	DoorClosed     bool
	CameraActive   bool
	Camera         int
	CameraName     string
	Flashing       bool
	FlashPhase     FlashPhase
	FlashIntensity int
	Cause          LossCause
	CanAcknowledge bool // Input will leave the jumpscare/win screen
	Repels         int  // Times the threat was sent back this night
	EncounterID    uuid.UUID
	Debug          bool
}

// Summary describes a finished night.
type Summary struct {
	ID        uuid.UUID
	Won       bool
	Cause     LossCause
	Survived  time.Duration
	PowerLeft float64
	Repels    int
	StartedAt time.Time
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	Snapshot Snapshot
	// Finished is set on the tick a night ends, nil otherwise.
	Finished *Summary
}
