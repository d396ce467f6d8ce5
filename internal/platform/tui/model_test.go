package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nightwatch/internal/config"
	"github.com/vovakirdan/nightwatch/internal/core"
	"github.com/vovakirdan/nightwatch/internal/encounter"
	"github.com/vovakirdan/nightwatch/internal/storage"
)

type modelHarness struct {
	t     *testing.T
	m     Model
	store *storage.Store
	frame time.Time
}

func newModelHarness(t *testing.T) *modelHarness {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7, Debug: true}
	h := &modelHarness{
		t:     t,
		m:     NewModel(config.DefaultNightConfig(), rt, Deps{Store: store}),
		store: store,
		frame: time.Unix(1_700_000_000, 0),
	}
	h.m.Init()
	h.send(TickMsg(h.frame)) // prime the pacer
	return h
}

func (h *modelHarness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(Model)
	if !ok {
		h.t.Fatalf("Update returned %T, want Model", next)
	}
	h.m = m
	return cmd
}

func (h *modelHarness) key(msg tea.KeyMsg) tea.Cmd {
	return h.send(msg)
}

func (h *modelHarness) click(r core.Rect) {
	x, y := r.Center()
	h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

// frames sends n frames, each late enough for the full catch-up.
func (h *modelHarness) frames(n int) {
	for range n {
		h.frame = h.frame.Add(time.Duration(maxCatchUp) * h.m.pacer.Step())
		h.send(TickMsg(h.frame))
	}
}

// framesUntil sends frames until cond holds, failing after limit frames.
func (h *modelHarness) framesUntil(limit int, cond func(encounter.Snapshot) bool) {
	h.t.Helper()
	for range limit {
		if cond(h.m.Snapshot()) {
			return
		}
		h.frames(1)
	}
	if !cond(h.m.Snapshot()) {
		h.t.Fatalf("condition not reached after %d frames, snapshot %+v", limit, h.m.Snapshot())
	}
}

func TestModelStartsInMenu(t *testing.T) {
	h := newModelHarness(t)

	if got := h.m.Snapshot().State; got != encounter.StateMenu {
		t.Fatalf("initial state = %v, want menu", got)
	}
	view := h.m.View()
	if !strings.Contains(view, "START NIGHT") {
		t.Errorf("menu view should show the start button:\n%s", view)
	}
}

func TestModelStartWithKeyAndClick(t *testing.T) {
	h := newModelHarness(t)
	h.key(tea.KeyMsg{Type: tea.KeyEnter})
	if got := h.m.Snapshot().State; got != encounter.StateActive {
		t.Fatalf("enter: state = %v, want active", got)
	}

	h2 := newModelHarness(t)
	h2.click(h2.m.Layout().Start)
	if got := h2.m.Snapshot().State; got != encounter.StateActive {
		t.Fatalf("click: state = %v, want active", got)
	}
}

func TestModelDoorAndCameraClicks(t *testing.T) {
	h := newModelHarness(t)
	h.key(tea.KeyMsg{Type: tea.KeyEnter})

	h.click(h.m.Layout().Door)
	if !h.m.Snapshot().DoorClosed {
		t.Error("clicking the door button should close the door")
	}

	h.click(h.m.Layout().Camera)
	if !h.m.Snapshot().CameraActive {
		t.Fatal("clicking the camera button should raise the monitor")
	}

	h.click(h.m.Layout().Cams[2])
	if got := h.m.Snapshot().Camera; got != 2 {
		t.Errorf("camera = %d, want 2", got)
	}
	if view := h.m.View(); !strings.Contains(view, "CAM 3") {
		t.Errorf("monitor view should label the feed:\n%s", view)
	}
}

func TestModelTicksAdvanceSimulation(t *testing.T) {
	h := newModelHarness(t)
	h.key(tea.KeyMsg{Type: tea.KeyEnter})

	h.frames(3)

	want := time.Duration(3*maxCatchUp) * h.m.pacer.Step()
	if got := h.m.Snapshot().Elapsed; got != want {
		t.Errorf("elapsed = %v, want %v", got, want)
	}
}

func TestModelTickKeepsLooping(t *testing.T) {
	h := newModelHarness(t)
	h.frame = h.frame.Add(h.m.pacer.Step())
	if cmd := h.send(TickMsg(h.frame)); cmd == nil {
		t.Error("tick should schedule the next frame")
	}
}

func TestModelJumpscareRecordsNight(t *testing.T) {
	h := newModelHarness(t)
	h.key(tea.KeyMsg{Type: tea.KeyEnter})
	h.key(tea.KeyMsg{Type: tea.KeyF2})

	h.framesUntil(50, func(s encounter.Snapshot) bool { return s.State == encounter.StateJumpscare })

	if got := h.m.Snapshot().Cause; got != encounter.CauseThreat {
		t.Errorf("cause = %v, want threat", got)
	}
	if view := h.m.View(); !strings.Contains(view, "JUMPSCARE! YOU DIED!") {
		t.Errorf("jumpscare view missing headline:\n%s", view)
	}

	nights, err := h.store.RecentNights(10)
	if err != nil {
		t.Fatalf("RecentNights() failed: %v", err)
	}
	if len(nights) != 1 {
		t.Fatalf("expected 1 recorded night, got %d", len(nights))
	}
	if nights[0].Won || nights[0].Cause != "threat" {
		t.Errorf("recorded night = %+v, want a loss to the threat", nights[0])
	}
	if nights[0].ID != h.m.Snapshot().EncounterID {
		t.Errorf("recorded id = %v, want %v", nights[0].ID, h.m.Snapshot().EncounterID)
	}

	// Keys are ignored during the cooldown.
	h.key(runeKey('x'))
	if got := h.m.Snapshot().State; got != encounter.StateJumpscare {
		t.Fatalf("key during cooldown: state = %v, want jumpscare", got)
	}

	h.framesUntil(50, func(s encounter.Snapshot) bool { return s.CanAcknowledge })
	h.key(runeKey('x'))
	if got := h.m.Snapshot().State; got != encounter.StateMenu {
		t.Fatalf("key after cooldown: state = %v, want menu", got)
	}
	if h.m.tally.Played != 1 {
		t.Errorf("menu tally = %+v, want 1 night played", h.m.tally)
	}
}

func TestModelQuit(t *testing.T) {
	h := newModelHarness(t)

	cmd := h.key(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if view := h.m.View(); view != "" {
		t.Errorf("view after quit = %q, want empty", view)
	}
}

func TestModelHistoryOverlay(t *testing.T) {
	h := newModelHarness(t)

	h.key(runeKey('h'))
	if !h.m.showHistory {
		t.Fatal("h should open the history")
	}
	if view := h.m.View(); !strings.Contains(view, "NIGHT JOURNAL") {
		t.Errorf("history view missing title:\n%s", view)
	}

	// Enter must not start a night behind the overlay.
	h.key(tea.KeyMsg{Type: tea.KeyEnter})
	if got := h.m.Snapshot().State; got != encounter.StateMenu {
		t.Errorf("state = %v, want menu while history is open", got)
	}

	h.key(tea.KeyMsg{Type: tea.KeyEsc})
	if h.m.showHistory {
		t.Error("esc should close the history")
	}
}

func TestModelResize(t *testing.T) {
	h := newModelHarness(t)

	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})

	l := h.m.Layout()
	if l.Width != 100 || l.Height != 40-footerHeight {
		t.Errorf("layout = %dx%d, want 100x%d", l.Width, l.Height, 40-footerHeight)
	}
	if h.m.screen.Width() != 100 || h.m.screen.Height() != 40-footerHeight {
		t.Errorf("screen = %dx%d", h.m.screen.Width(), h.m.screen.Height())
	}
}

func TestModelHelpToggleShrinksScreen(t *testing.T) {
	h := newModelHarness(t)

	h.key(runeKey('?'))
	if !h.m.help.ShowAll {
		t.Fatal("? should expand the help")
	}
	if got, want := h.m.screen.Height(), 24-h.m.footerLines(); got != want {
		t.Errorf("screen height = %d, want %d", got, want)
	}
	if lines := strings.Count(h.m.View(), "\n") + 1; lines > 24 {
		t.Errorf("view is %d lines, taller than the terminal", lines)
	}
}
