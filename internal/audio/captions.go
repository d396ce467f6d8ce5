package audio

import (
	"time"

	"github.com/vovakirdan/nightwatch/internal/core"
)

// Caption is one line of on-screen sound description.
type Caption struct {
	Text string
	At   time.Time
}

// Captions keeps the most recent one-shot captions for display. Loops are
// not captioned every time they start; the view shows them separately.
type Captions struct {
	clock core.Clock
	ttl   time.Duration
	max   int
	items []Caption
}

// NewCaptions creates a feed keeping at most max lines, each for ttl.
func NewCaptions(clock core.Clock, ttl time.Duration, max int) *Captions {
	if max <= 0 {
		max = 1
	}
	return &Captions{clock: clock, ttl: ttl, max: max}
}

// Start implements Output.
func (c *Captions) Start(t Track) {
	if t.Loop || t.Caption == "" {
		return
	}
	c.items = append(c.items, Caption{Text: t.Caption, At: c.clock.Now()})
	if len(c.items) > c.max {
		c.items = c.items[len(c.items)-c.max:]
	}
}

// StopAll implements Output. Captions already shown stay until they expire.
func (c *Captions) StopAll() {}

// Active returns the captions younger than the TTL, oldest first.
func (c *Captions) Active() []Caption {
	now := c.clock.Now()
	kept := c.items[:0]
	for _, it := range c.items {
		if now.Sub(it.At) < c.ttl {
			kept = append(kept, it)
		}
	}
	c.items = kept
	out := make([]Caption, len(kept))
	copy(out, kept)
	return out
}
