package encounter

import (
	"testing"
	"time"
)

func TestFlashEnvelope(t *testing.T) {
	f := NewFlash(100*time.Millisecond, 400*time.Millisecond)
	if !f.Trigger(epoch) {
		t.Fatal("Trigger on an idle flash should succeed")
	}

	tests := []struct {
		at        time.Duration
		intensity int
		phase     FlashPhase
	}{
		{0, 0, FlashFadingIn},
		{50 * time.Millisecond, 127, FlashFadingIn},
		{100 * time.Millisecond, 255, FlashFadingOut},
		{300 * time.Millisecond, 127, FlashFadingOut},
		{499 * time.Millisecond, 0, FlashFadingOut},
		{500 * time.Millisecond, 0, FlashInactive},
		{800 * time.Millisecond, 0, FlashInactive},
	}

	for _, tc := range tests {
		f.Update(epoch.Add(tc.at))
		if f.Intensity() != tc.intensity {
			t.Errorf("at %v: intensity = %d, expected %d", tc.at, f.Intensity(), tc.intensity)
		}
		if f.Phase() != tc.phase {
			t.Errorf("at %v: phase = %v, expected %v", tc.at, f.Phase(), tc.phase)
		}
	}
}

func TestFlashRetriggerIsNoop(t *testing.T) {
	f := NewFlash(100*time.Millisecond, 400*time.Millisecond)
	f.Trigger(epoch)
	f.Update(epoch.Add(50 * time.Millisecond))

	if f.Trigger(epoch.Add(60 * time.Millisecond)) {
		t.Error("Trigger while active should be refused")
	}

	// Envelope still measured from the first trigger
	f.Update(epoch.Add(100 * time.Millisecond))
	if f.Intensity() != MaxIntensity {
		t.Errorf("intensity = %d, expected peak from the original trigger", f.Intensity())
	}

	// After it finishes it can fire again
	f.Update(epoch.Add(600 * time.Millisecond))
	if !f.Trigger(epoch.Add(600 * time.Millisecond)) {
		t.Error("Trigger after the envelope ended should succeed")
	}
}

func TestFlashUpdateWhenIdle(t *testing.T) {
	f := NewFlash(100*time.Millisecond, 400*time.Millisecond)
	f.Update(epoch)
	if f.Active() || f.Intensity() != 0 {
		t.Error("idle flash should stay dark")
	}
}
