package core

import (
	"testing"
	"time"
)

func TestManualClockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, expected %v", c.Now(), start)
	}

	c.Advance(30 * time.Millisecond)
	c.Advance(-time.Second) // ignored
	if got := c.Now().Sub(start); got != 30*time.Millisecond {
		t.Errorf("elapsed = %v, expected 30ms", got)
	}
}

func TestActionCameraIndex(t *testing.T) {
	for i := 0; i < 3; i++ {
		a := CameraAction(i)
		idx, ok := a.CameraIndex()
		if !ok || idx != i {
			t.Errorf("CameraAction(%d).CameraIndex() = %d, %v", i, idx, ok)
		}
	}
	if _, ok := ActionFlash.CameraIndex(); ok {
		t.Error("Flash should not map to a camera")
	}
	if CameraAction(3) != ActionNone {
		t.Error("out of range camera index should map to ActionNone")
	}
}
