package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nightwatch/internal/core"
	"github.com/vovakirdan/nightwatch/internal/encounter"
)

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Start       key.Binding
	Quit        key.Binding
	Door        key.Binding
	Camera      key.Binding
	Cam1        key.Binding
	Cam2        key.Binding
	Cam3        key.Binding
	Flash       key.Binding
	History     key.Binding
	Help        key.Binding
	Back        key.Binding
	DebugNear   key.Binding
	DebugOffice key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Door, k.Camera, k.Flash, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.History, k.Quit},
		{k.Door, k.Camera, k.Flash},
		{k.Cam1, k.Cam2, k.Cam3},
		{k.DebugNear, k.DebugOffice, k.Help},
	}
}

// DefaultKeyMap returns default key bindings. The teleport bindings are
// only enabled in debug mode.
func DefaultKeyMap(debug bool) KeyMap {
	k := KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter/s", "start night"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Door: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "door"),
		),
		Camera: key.NewBinding(
			key.WithKeys("c", "tab"),
			key.WithHelp("c/tab", "monitor"),
		),
		Cam1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "cam 1"),
		),
		Cam2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "cam 2"),
		),
		Cam3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "cam 3"),
		),
		Flash: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flash"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "h"),
			key.WithHelp("esc", "back"),
		),
		DebugNear: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "threat to hallway"),
		),
		DebugOffice: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "threat to office"),
		),
	}
	k.DebugNear.SetEnabled(debug)
	k.DebugOffice.SetEnabled(debug)
	return k
}

// Resolve translates a key press into an action for the given game state.
// On the jumpscare and win screens every key acknowledges, except quit.
func (k KeyMap) Resolve(msg tea.KeyMsg, state encounter.State) core.Action {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit
	}

	switch state {
	case encounter.StateJumpscare, encounter.StateWin:
		return core.ActionAcknowledge

	case encounter.StateMenu:
		switch {
		case key.Matches(msg, k.Start):
			return core.ActionStart
		case key.Matches(msg, k.History):
			return core.ActionHistory
		case key.Matches(msg, k.Help):
			return core.ActionHelp
		}

	case encounter.StateActive:
		switch {
		case key.Matches(msg, k.Door):
			return core.ActionToggleDoor
		case key.Matches(msg, k.Camera):
			return core.ActionToggleCamera
		case key.Matches(msg, k.Cam1):
			return core.ActionCamera1
		case key.Matches(msg, k.Cam2):
			return core.ActionCamera2
		case key.Matches(msg, k.Cam3):
			return core.ActionCamera3
		case key.Matches(msg, k.Flash):
			return core.ActionFlash
		case key.Matches(msg, k.Help):
			return core.ActionHelp
		case key.Matches(msg, k.DebugNear):
			return core.ActionDebugThreatNear
		case key.Matches(msg, k.DebugOffice):
			return core.ActionDebugThreatOffice
		}
	}

	return core.ActionNone
}
