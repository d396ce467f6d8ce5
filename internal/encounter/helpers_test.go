package encounter

import (
	"testing"
	"time"

	"github.com/vovakirdan/nightwatch/internal/config"
	"github.com/vovakirdan/nightwatch/internal/core"
)

const tick = 30 * time.Millisecond

var epoch = time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC)

// scriptedRoller returns the given values in order, then never advances.
type scriptedRoller struct {
	values []float64
	calls  int
}

func (r *scriptedRoller) Float64() float64 {
	defer func() { r.calls++ }()
	if r.calls < len(r.values) {
		return r.values[r.calls]
	}
	return 0.99
}

// cueRecorder remembers every cue it was given.
type cueRecorder struct {
	cues []Cue
}

func (r *cueRecorder) Play(c Cue) {
	r.cues = append(r.cues, c)
}

func (r *cueRecorder) count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func (r *cueRecorder) last() Cue {
	if len(r.cues) == 0 {
		return -1
	}
	return r.cues[len(r.cues)-1]
}

type harness struct {
	t     *testing.T
	game  *Game
	clock *core.ManualClock
	cues  *cueRecorder
	rng   *scriptedRoller
}

func newHarness(t *testing.T, cfg config.NightConfig, rolls ...float64) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		clock: core.NewManualClock(epoch),
		cues:  &cueRecorder{},
		rng:   &scriptedRoller{values: rolls},
	}
	h.game = New(cfg, Options{
		Clock: h.clock,
		Rand:  h.rng,
		Cues:  h.cues,
		Debug: true,
	})
	return h
}

// started returns a harness already in an active night.
func started(t *testing.T, rolls ...float64) *harness {
	t.Helper()
	h := newHarness(t, config.DefaultNightConfig(), rolls...)
	h.apply(core.ActionStart)
	if h.game.State() != StateActive {
		t.Fatalf("Start should enter the active state, got %v", h.game.State())
	}
	return h
}

func (h *harness) apply(a core.Action) bool {
	return h.game.Apply(a)
}

// step advances the clock by d and runs one tick.
func (h *harness) step(d time.Duration) StepResult {
	h.clock.Advance(d)
	return h.game.Step()
}

// run advances n ticks of the standard interval.
func (h *harness) run(n int) StepResult {
	var res StepResult
	for i := 0; i < n; i++ {
		res = h.step(tick)
	}
	return res
}
