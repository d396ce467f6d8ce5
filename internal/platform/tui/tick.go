// Package tui runs nightwatch in the terminal with Bubble Tea.
// It maps keys and mouse clicks to actions, paces the simulation and
// draws the views.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxCatchUp bounds how many simulation steps one frame may run.
// Backlog beyond it (a suspended terminal, a slow render) is dropped.
const maxCatchUp = 10

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Pacer turns the wall time between frames into whole simulation steps.
// Frames may arrive late or early; the simulation still advances at a
// fixed step.
type Pacer struct {
	step     time.Duration
	maxSteps int
	last     time.Time
	backlog  time.Duration
}

// NewPacer creates a pacer for the given step length.
func NewPacer(step time.Duration, maxSteps int) *Pacer {
	if step <= 0 {
		step = time.Second / 30
	}
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &Pacer{step: step, maxSteps: maxSteps}
}

// Step returns the simulation step length.
func (p *Pacer) Step() time.Duration {
	return p.step
}

// Steps returns how many simulation steps are due at now.
// The first call only records the frame time.
func (p *Pacer) Steps(now time.Time) int {
	if p.last.IsZero() {
		p.last = now
		return 0
	}

	d := now.Sub(p.last)
	p.last = now
	if d < 0 {
		d = 0
	}

	p.backlog += d
	n := int(p.backlog / p.step)
	p.backlog -= time.Duration(n) * p.step

	if n > p.maxSteps {
		n = p.maxSteps
		p.backlog = 0
	}
	return n
}

// Reset forgets the last frame time and any backlog.
func (p *Pacer) Reset() {
	p.last = time.Time{}
	p.backlog = 0
}
