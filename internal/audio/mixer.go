package audio

import (
	"github.com/vovakirdan/nightwatch/internal/encounter"
)

// Output receives resolved tracks from the mixer.
type Output interface {
	Start(t Track)
	StopAll()
}

// Mixer turns engine cues into tracks and hands them to its outputs.
// It implements encounter.CueSink.
type Mixer struct {
	bank    *Bank
	outputs []Output
	loop    *Track
	played  map[encounter.Cue]int
}

// NewMixer creates a mixer over a bank.
func NewMixer(bank *Bank, outputs ...Output) *Mixer {
	return &Mixer{
		bank:    bank,
		outputs: outputs,
		played:  make(map[encounter.Cue]int),
	}
}

// Play realizes one cue. Silence stops everything; a looping track replaces
// the current loop.
func (m *Mixer) Play(c encounter.Cue) {
	m.played[c]++

	if c == encounter.CueSilence {
		m.loop = nil
		for _, o := range m.outputs {
			o.StopAll()
		}
		return
	}

	tr := m.bank.Track(c)
	if tr.Loop {
		m.loop = &tr
	}
	for _, o := range m.outputs {
		o.Start(tr)
	}
}

// NowLooping returns the current loop, if any.
func (m *Mixer) NowLooping() (Track, bool) {
	if m.loop == nil {
		return Track{}, false
	}
	return *m.loop, true
}

// Played returns how many times a cue was received.
func (m *Mixer) Played(c encounter.Cue) int {
	return m.played[c]
}
