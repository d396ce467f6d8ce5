package core

// Action is a discrete player command, abstracted from the physical key or
// mouse button that produced it. Every action is edge-triggered: one value
// per key press or click.
type Action int

const (
	ActionNone         Action = iota
	ActionStart               // Enter, S - start the night from the menu
	ActionQuit                // Q, Ctrl+C - leave the game
	ActionToggleDoor          // D - close/open the office door
	ActionToggleCamera        // C, Tab - raise/lower the camera monitor
	ActionCamera1             // 1 - Show Stage
	ActionCamera2             // 2 - Dining Area
	ActionCamera3             // 3 - Backstage
	ActionFlash               // Space - flashlight burst
	ActionAcknowledge         // any key on the jumpscare/win screens
	ActionHistory             // H - toggle the night journal (menu only)
	ActionHelp                // ? - toggle full help
	ActionDebugThreatNear     // F1 - teleport threat next to the office (debug)
	ActionDebugThreatOffice   // F2 - teleport threat into the office (debug)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	case ActionToggleDoor:
		return "ToggleDoor"
	case ActionToggleCamera:
		return "ToggleCamera"
	case ActionCamera1:
		return "Camera1"
	case ActionCamera2:
		return "Camera2"
	case ActionCamera3:
		return "Camera3"
	case ActionFlash:
		return "Flash"
	case ActionAcknowledge:
		return "Acknowledge"
	case ActionHistory:
		return "History"
	case ActionHelp:
		return "Help"
	case ActionDebugThreatNear:
		return "DebugThreatNear"
	case ActionDebugThreatOffice:
		return "DebugThreatOffice"
	default:
		return "Unknown"
	}
}

// CameraIndex returns the zero-based camera selected by a Camera action.
// ok is false for every other action.
func (a Action) CameraIndex() (idx int, ok bool) {
	switch a {
	case ActionCamera1:
		return 0, true
	case ActionCamera2:
		return 1, true
	case ActionCamera3:
		return 2, true
	}
	return 0, false
}

// CameraAction returns the Camera action for a zero-based index.
func CameraAction(idx int) Action {
	switch idx {
	case 0:
		return ActionCamera1
	case 1:
		return ActionCamera2
	case 2:
		return ActionCamera3
	}
	return ActionNone
}

// IsDebug reports whether the action is a developer shortcut.
func (a Action) IsDebug() bool {
	return a == ActionDebugThreatNear || a == ActionDebugThreatOffice
}
