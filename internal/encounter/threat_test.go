package encounter

import (
	"testing"

	"github.com/vovakirdan/nightwatch/internal/config"
)

func TestThreatAdvancesAfterPeriod(t *testing.T) {
	cfg := config.DefaultNightConfig().Threat
	rng := &scriptedRoller{values: []float64{0.1}}
	th := NewThreat(cfg, rng)

	for i := 1; i <= cfg.AdvancePeriod; i++ {
		if th.Update(false) {
			t.Fatalf("threat moved early on tick %d", i)
		}
	}
	if rng.calls != 0 {
		t.Fatalf("no roll expected before the counter exceeds the period, got %d", rng.calls)
	}

	if !th.Update(false) {
		t.Fatal("threat should advance when the roll is under the chance")
	}
	if th.Location() != 1 {
		t.Errorf("location = %d, expected 1", th.Location())
	}
	if th.counter != 0 {
		t.Errorf("counter should reset after firing, got %d", th.counter)
	}
}

func TestThreatFailedRollResetsCounter(t *testing.T) {
	cfg := config.DefaultNightConfig().Threat
	rng := &scriptedRoller{values: []float64{0.3, 0.0}}
	th := NewThreat(cfg, rng)

	for i := 0; i <= cfg.AdvancePeriod; i++ {
		th.Update(false)
	}
	if th.Location() != 0 {
		t.Errorf("roll of exactly the chance should not advance, location = %d", th.Location())
	}
	if th.counter != 0 {
		t.Errorf("counter should reset regardless of outcome, got %d", th.counter)
	}

	for i := 0; i <= cfg.AdvancePeriod; i++ {
		th.Update(false)
	}
	if th.Location() != 1 {
		t.Errorf("second roll should advance, location = %d", th.Location())
	}
}

func TestThreatHeldWhileTrapped(t *testing.T) {
	cfg := config.DefaultNightConfig().Threat
	th := NewThreat(cfg, &scriptedRoller{values: []float64{0}})

	for i := 0; i < 500; i++ {
		th.Update(true)
	}
	if th.counter != 0 || th.Location() != 0 {
		t.Errorf("trapped threat should not count or move: counter=%d location=%d", th.counter, th.Location())
	}
}

func TestThreatClampedAtOffice(t *testing.T) {
	cfg := config.DefaultNightConfig().Threat
	th := NewThreat(cfg, &scriptedRoller{values: []float64{0, 0, 0, 0, 0, 0}})

	for i := 0; i < 6*(cfg.AdvancePeriod+1); i++ {
		th.Update(false)
	}
	if th.Location() != cfg.Office {
		t.Errorf("location = %d, expected clamp at %d", th.Location(), cfg.Office)
	}
	if !th.InOffice() {
		t.Error("InOffice() should be true at the clamp")
	}
}

func TestThreatTeleportClamps(t *testing.T) {
	cfg := config.DefaultNightConfig().Threat
	th := NewThreat(cfg, &scriptedRoller{})

	th.Teleport(10)
	if th.Location() != cfg.Office {
		t.Errorf("Teleport(10) = %d, expected %d", th.Location(), cfg.Office)
	}
	th.Teleport(-4)
	if th.Location() != 0 {
		t.Errorf("Teleport(-4) = %d, expected 0", th.Location())
	}
}
