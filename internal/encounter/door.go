package encounter

// Door is the office door.
type Door struct {
	closed bool
}

// Toggle flips the door and returns true if it is now closed.
func (d *Door) Toggle() bool {
	d.closed = !d.closed
	return d.closed
}

// Open opens the door.
func (d *Door) Open() {
	d.closed = false
}

// Closed reports whether the door is closed.
func (d Door) Closed() bool {
	return d.closed
}

// Camera is the monitor: on/off plus the selected feed.
type Camera struct {
	active   bool
	selected int
	count    int
}

// NewCamera creates a lowered monitor with count feeds.
func NewCamera(count int) Camera {
	return Camera{count: count}
}

// Toggle raises or lowers the monitor. Raising always starts on feed 0.
// Returns true if the monitor is now up.
func (c *Camera) Toggle() bool {
	c.active = !c.active
	if c.active {
		c.selected = 0
	}
	return c.active
}

// Select switches to feed idx. Only works while the monitor is up, and
// only reports a change when idx differs from the current feed.
func (c *Camera) Select(idx int) bool {
	if !c.active || idx < 0 || idx >= c.count || idx == c.selected {
		return false
	}
	c.selected = idx
	return true
}

// Active reports whether the monitor is up.
func (c Camera) Active() bool {
	return c.active
}

// Selected returns the selected feed index.
func (c Camera) Selected() int {
	return c.selected
}

// Reset lowers the monitor and selects feed 0.
func (c *Camera) Reset() {
	c.active = false
	c.selected = 0
}
