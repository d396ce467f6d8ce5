// Package config provides YAML-based configuration for the night: timing
// windows, power drain, threat behavior, cameras and audio assets.
package config

import "time"

// NightConfig contains every tunable of one encounter.
type NightConfig struct {
	Night     NightSection     `yaml:"night"`
	Power     PowerSection     `yaml:"power"`
	Threat    ThreatSection    `yaml:"threat"`
	Office    OfficeSection    `yaml:"office"`
	Flash     FlashSection     `yaml:"flash"`
	Jumpscare JumpscareSection `yaml:"jumpscare"`
	Cameras   []string         `yaml:"cameras"`
	Audio     AudioSection     `yaml:"audio"`
}

// NightSection defines the length of the night and the simulation rate.
type NightSection struct {
	Duration time.Duration `yaml:"duration"`
	TickRate int           `yaml:"tick_rate"` // Simulation ticks per second
}

// PowerSection defines the power budget and per-tick drain of each system.
type PowerSection struct {
	Initial     float64 `yaml:"initial"`
	DoorDrain   float64 `yaml:"door_drain"`
	CameraDrain float64 `yaml:"camera_drain"`
	FlashDrain  float64 `yaml:"flash_drain"`
}

// ThreatSection defines how the animatronic advances.
type ThreatSection struct {
	AdvancePeriod int     `yaml:"advance_period"` // Ticks between advance rolls
	AdvanceChance float64 `yaml:"advance_chance"` // Probability of advancing on a roll
	Office        int     `yaml:"office"`         // Location index of the office
}

// OfficeSection defines the dwell windows once the threat reaches the office.
type OfficeSection struct {
	WarningWindow time.Duration `yaml:"warning_window"` // Door open this long = jumpscare
	TrappedWindow time.Duration `yaml:"trapped_window"` // Door closed this long = threat leaves
}

// FlashSection defines the flashlight envelope.
type FlashSection struct {
	FadeIn  time.Duration `yaml:"fade_in"`
	FadeOut time.Duration `yaml:"fade_out"`
}

// JumpscareSection defines the jumpscare screen.
type JumpscareSection struct {
	Cooldown time.Duration `yaml:"cooldown"` // Input ignored until this has passed
}

// AudioSection maps cue keys to their backing assets.
type AudioSection struct {
	Cues map[string]CueAsset `yaml:"cues"`
}

// CueAsset describes one sound.
type CueAsset struct {
	File    string  `yaml:"file"`
	Volume  float64 `yaml:"volume"`
	Loop    bool    `yaml:"loop"`
	Caption string  `yaml:"caption"`
}

// TickInterval returns the wall-clock length of one simulation tick.
func (c NightConfig) TickInterval() time.Duration {
	if c.Night.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Night.TickRate)
}

// FlashDuration returns the total length of the flash envelope.
func (c NightConfig) FlashDuration() time.Duration {
	return c.Flash.FadeIn + c.Flash.FadeOut
}
