package tui

import (
	"github.com/vovakirdan/nightwatch/internal/core"
	"github.com/vovakirdan/nightwatch/internal/encounter"
)

// Layout constants, in character cells.
const (
	footerHeight = 3 // power bar, captions, help
	buttonW      = 14
	buttonH      = 3
	camButtonW   = 7
)

// Layout holds the drawable regions and clickable buttons for one screen
// size. It is recomputed on resize.
type Layout struct {
	Width, Height int

	// Menu
	Start core.Rect
	Quit  core.Rect

	// Night
	Scene  core.Rect // office or camera feed, between HUD line and toolbar
	Door   core.Rect
	Camera core.Rect
	Flash  core.Rect
	Cams   []core.Rect // camera select, only while the monitor is up
}

// NewLayout computes the layout for a screen of w x h cells with the given
// number of cameras.
func NewLayout(w, h, cameras int) Layout {
	l := Layout{Width: w, Height: h}

	cx := (w - buttonW) / 2
	l.Start = core.NewRect(cx, h/2, buttonW, buttonH)
	l.Quit = core.NewRect(cx, h/2+buttonH+1, buttonW, buttonH)

	toolbarY := h - buttonH
	l.Door = core.NewRect(1, toolbarY, buttonW, buttonH)
	l.Camera = core.NewRect(l.Door.Right()+1, toolbarY, buttonW, buttonH)
	l.Flash = core.NewRect(l.Camera.Right()+1, toolbarY, buttonW, buttonH)
	l.Scene = core.NewRect(0, 1, w, core.Max(toolbarY-1, 0))

	l.Cams = make([]core.Rect, cameras)
	for i := range cameras {
		x := w - 1 - (cameras-i)*(camButtonW+1)
		l.Cams[i] = core.NewRect(x, l.Scene.Y+1, camButtonW, buttonH)
	}
	return l
}

// HitTest returns the action of the button under (x, y) for the current
// snapshot. Any click acknowledges the jumpscare and win screens.
func (l Layout) HitTest(x, y int, snap encounter.Snapshot) core.Action {
	switch snap.State {
	case encounter.StateMenu:
		switch {
		case l.Start.Contains(x, y):
			return core.ActionStart
		case l.Quit.Contains(x, y):
			return core.ActionQuit
		}

	case encounter.StateActive:
		if snap.CameraActive {
			for i, r := range l.Cams {
				if r.Contains(x, y) {
					return core.CameraAction(i)
				}
			}
		}
		switch {
		case l.Door.Contains(x, y):
			return core.ActionToggleDoor
		case l.Camera.Contains(x, y):
			return core.ActionToggleCamera
		case l.Flash.Contains(x, y):
			return core.ActionFlash
		}

	case encounter.StateJumpscare, encounter.StateWin:
		return core.ActionAcknowledge
	}

	return core.ActionNone
}
