package encounter

import "time"

// MaxIntensity is the peak flash intensity.
const MaxIntensity = 255

// FlashPhase is where the flash envelope currently is.
type FlashPhase int

const (
	FlashInactive FlashPhase = iota
	FlashFadingIn
	FlashFadingOut
)

// String implements fmt.Stringer.
func (p FlashPhase) String() string {
	switch p {
	case FlashInactive:
		return "inactive"
	case FlashFadingIn:
		return "fading-in"
	case FlashFadingOut:
		return "fading-out"
	default:
		return "unknown"
	}
}

// Flash is a single-slot light pulse: linear ramp up over fadeIn, linear
// ramp down over fadeOut, then off. It cannot be retriggered while lit.
type Flash struct {
	fadeIn    time.Duration
	fadeOut   time.Duration
	phase     FlashPhase
	timer     Stopwatch
	intensity int
}

// NewFlash creates an inactive flash with the given envelope.
func NewFlash(fadeIn, fadeOut time.Duration) Flash {
	return Flash{fadeIn: fadeIn, fadeOut: fadeOut}
}

// Trigger lights the flash at now. Returns false (and changes nothing) if
// the flash is already active.
func (f *Flash) Trigger(now time.Time) bool {
	if f.Active() {
		return false
	}
	f.phase = FlashFadingIn
	f.timer.Start(now)
	f.intensity = 0
	return true
}

// Update recomputes the envelope at now.
func (f *Flash) Update(now time.Time) {
	elapsed, ok := f.timer.Elapsed(now)
	if !ok {
		return
	}
	switch {
	case elapsed < f.fadeIn:
		f.phase = FlashFadingIn
		f.intensity = int(MaxIntensity * float64(elapsed) / float64(f.fadeIn))
	case elapsed < f.fadeIn+f.fadeOut:
		f.phase = FlashFadingOut
		progress := float64(elapsed-f.fadeIn) / float64(f.fadeOut)
		f.intensity = int(MaxIntensity * (1 - progress))
	default:
		f.Reset()
	}
}

// Reset turns the flash off.
func (f *Flash) Reset() {
	f.phase = FlashInactive
	f.timer.Stop()
	f.intensity = 0
}

// Active reports whether the envelope is running.
func (f Flash) Active() bool {
	return f.phase != FlashInactive
}

// Phase returns the current envelope phase.
func (f Flash) Phase() FlashPhase {
	return f.phase
}

// Intensity returns the light level in [0, 255].
func (f Flash) Intensity() int {
	return f.intensity
}
