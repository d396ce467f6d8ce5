package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nightwatch/internal/audio"
	"github.com/vovakirdan/nightwatch/internal/config"
	"github.com/vovakirdan/nightwatch/internal/core"
	"github.com/vovakirdan/nightwatch/internal/encounter"
	"github.com/vovakirdan/nightwatch/internal/storage"
)

// Caption feed settings.
const (
	captionTTL   = 3 * time.Second
	captionLines = 3
	fullHelpRows = 3
)

// Deps carries the collaborators of the terminal model.
type Deps struct {
	Bank   *audio.Bank    // nil means no assets: every cue is silent
	Store  *storage.Store // nil disables the night journal
	Logger *log.Logger    // nil discards logs
}

// Model is the Bubble Tea model for a nightwatch session.
type Model struct {
	game     *encounter.Game
	clock    *core.ManualClock
	pacer    *Pacer
	mixer    *audio.Mixer
	captions *audio.Captions
	store    *storage.Store
	logger   *log.Logger

	screen  *core.Screen
	layout  Layout
	keys    KeyMap
	help    help.Model
	power   progress.Model
	history historyView

	config      core.RuntimeConfig
	cameras     int
	snap        encounter.Snapshot
	tally       storage.Tally
	showHistory bool
}

// NewModel creates the model and the game it drives. The game runs on a
// manual clock that only the pacer advances, one tick interval per step.
func NewModel(cfg config.NightConfig, rt core.RuntimeConfig, deps Deps) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Bank == nil {
		deps.Bank = audio.NewBank(config.AudioSection{})
	}

	clock := core.NewManualClock(time.Now())
	captions := audio.NewCaptions(clock, captionTTL, captionLines)
	mixer := audio.NewMixer(deps.Bank, captions, audio.LogOutput{Logger: deps.Logger})

	game := encounter.New(cfg, encounter.Options{
		Clock:  clock,
		Rand:   rand.New(rand.NewSource(rt.Seed)),
		Cues:   mixer,
		Logger: deps.Logger,
		Debug:  rt.Debug,
	})

	m := Model{
		game:     game,
		clock:    clock,
		pacer:    NewPacer(cfg.TickInterval(), maxCatchUp),
		mixer:    mixer,
		captions: captions,
		store:    deps.Store,
		logger:   deps.Logger,
		keys:     DefaultKeyMap(rt.Debug),
		help:     help.New(),
		power:    progress.New(progress.WithGradient("#7a0000", "#f5d76e"), progress.WithoutPercentage()),
		config:   rt,
		cameras:  len(cfg.Cameras),
		screen:   core.NewScreen(0, 0),
	}
	m.resize(rt.ScreenW, rt.ScreenH)
	m.snap = game.Snapshot()
	m.refreshTally()
	return m
}

// Init announces the menu and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Launch()
	return tickCmd(m.pacer.Step())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHistory {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.dispatch(core.ActionQuit)
		case key.Matches(msg, m.keys.Back):
			m.showHistory = false
			return m, nil
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	return m.dispatch(m.keys.Resolve(msg, m.game.State()))
}

// handleMouse maps left clicks on buttons to actions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHistory {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	return m.dispatch(m.layout.HitTest(msg.X, msg.Y, m.snap))
}

// dispatch applies one action. UI-only actions never reach the game.
func (m Model) dispatch(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionNone:
		return m, nil

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.config.ScreenW, m.config.ScreenH)
		return m, nil

	case core.ActionHistory:
		m.openHistory()
		return m, nil
	}

	before := m.game.State()
	m.game.Apply(a)
	m.snap = m.game.Snapshot()

	if m.game.Quitting() {
		return m, tea.Quit
	}
	if before != encounter.StateMenu && m.snap.State == encounter.StateMenu {
		m.refreshTally()
	}
	return m, nil
}

// handleTick runs the simulation steps due at this frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	steps := m.pacer.Steps(now)
	for range steps {
		m.clock.Advance(m.pacer.Step())
		res := m.game.Step()
		m.snap = res.Snapshot
		if res.Finished != nil {
			m.record(*res.Finished)
		}
	}
	return m, tickCmd(m.pacer.Step())
}

// record writes a finished night to the journal.
func (m *Model) record(sum encounter.Summary) {
	if m.store == nil {
		return
	}
	err := m.store.SaveNight(storage.NightRecord{
		ID:        sum.ID,
		Won:       sum.Won,
		Cause:     sum.Cause.String(),
		Survived:  sum.Survived,
		PowerLeft: sum.PowerLeft,
		Repels:    sum.Repels,
		StartedAt: sum.StartedAt,
	})
	if err != nil {
		m.logger.Error("cannot record night", "id", sum.ID, "err", err)
	}
}

func (m *Model) refreshTally() {
	if m.store == nil {
		return
	}
	tally, err := m.store.Tally()
	if err != nil {
		m.logger.Error("cannot read journal", "err", err)
		return
	}
	m.tally = tally
}

func (m *Model) openHistory() {
	m.showHistory = true
	if m.store == nil {
		m.history.SetRecords(nil)
		return
	}
	records, err := m.store.RecentNights(maxHistory)
	if err != nil {
		m.logger.Error("cannot read journal", "err", err)
	}
	m.history.SetRecords(records)
}

// resize adapts the screen, layout and widgets to a new terminal size.
func (m *Model) resize(w, h int) {
	m.config.ScreenW = w
	m.config.ScreenH = h

	screenH := max(h-m.footerLines(), 1)
	m.screen.Resize(w, screenH)
	m.layout = NewLayout(w, screenH, m.cameras)

	m.help.Width = w
	m.power.Width = core.Clamp(w-16, 10, 60)
	if m.history.width == 0 {
		m.history = newHistoryView(w, h)
	} else {
		m.history.Resize(w, h)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.game.Quitting() {
		return ""
	}
	if m.showHistory {
		return m.history.View() + "\n" + m.footer()
	}

	m.screen.Clear()
	switch m.snap.State {
	case encounter.StateMenu:
		drawMenu(m.screen, m.layout, m.tally)
	case encounter.StateActive:
		if m.snap.CameraActive {
			drawCamera(m.screen, m.layout, m.snap)
		} else {
			drawOffice(m.screen, m.layout, m.snap)
		}
	case encounter.StateJumpscare:
		drawJumpscare(m.screen, m.layout, m.snap)
	case encounter.StateWin:
		drawWin(m.screen, m.layout, m.snap)
	}

	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footerLines returns the height of the footer. Full help takes one row
// per binding in its tallest column.
func (m Model) footerLines() int {
	if m.help.ShowAll {
		return footerHeight - 1 + fullHelpRows
	}
	return footerHeight
}

// footer renders the lines under the screen: power bar, captions and key
// help.
func (m Model) footer() string {
	var lines [footerHeight]string

	if m.snap.State == encounter.StateActive {
		label := powerLabelStyle
		if m.snap.PowerPercent < 0.2 {
			label = powerLowStyle
		}
		lines[0] = label.Render(fmt.Sprintf("POWER %3d%% ", int(m.snap.PowerPercent*100))) +
			m.power.ViewAs(m.snap.PowerPercent)
	}

	var texts []string
	for _, c := range m.captions.Active() {
		texts = append(texts, c.Text)
	}
	if tr, ok := m.mixer.NowLooping(); ok && tr.Caption != "" {
		texts = append([]string{"♪ " + tr.Caption}, texts...)
	}
	lines[1] = captionStyle.Render(strings.Join(texts, "  "))

	lines[2] = helpStyle.Render(m.help.View(m.keys))

	return strings.Join(lines[:], "\n")
}

// Snapshot returns the last snapshot the model rendered from.
func (m Model) Snapshot() encounter.Snapshot {
	return m.snap
}

// Layout returns the current hit boxes.
func (m Model) Layout() Layout {
	return m.layout
}

// Run starts the Bubble Tea program with the given model.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
