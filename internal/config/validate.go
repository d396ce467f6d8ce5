package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the config describes a playable night.
func (c NightConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Night.Duration > 0, "night.duration must be positive, got %v", c.Night.Duration)
	check(c.Night.TickRate > 0, "night.tick_rate must be positive, got %d", c.Night.TickRate)

	check(c.Power.Initial > 0, "power.initial must be positive, got %v", c.Power.Initial)
	check(c.Power.DoorDrain >= 0, "power.door_drain must not be negative, got %v", c.Power.DoorDrain)
	check(c.Power.CameraDrain >= 0, "power.camera_drain must not be negative, got %v", c.Power.CameraDrain)
	check(c.Power.FlashDrain >= 0, "power.flash_drain must not be negative, got %v", c.Power.FlashDrain)

	check(c.Threat.AdvancePeriod > 0, "threat.advance_period must be positive, got %d", c.Threat.AdvancePeriod)
	check(c.Threat.AdvanceChance >= 0 && c.Threat.AdvanceChance <= 1,
		"threat.advance_chance must be within [0, 1], got %v", c.Threat.AdvanceChance)
	check(c.Threat.Office > 0, "threat.office must be positive, got %d", c.Threat.Office)
	check(len(c.Cameras) == c.Threat.Office,
		"need one camera per location before the office (%d), got %d", c.Threat.Office, len(c.Cameras))

	check(c.Office.WarningWindow > 0, "office.warning_window must be positive, got %v", c.Office.WarningWindow)
	check(c.Office.TrappedWindow > 0, "office.trapped_window must be positive, got %v", c.Office.TrappedWindow)

	check(c.Flash.FadeIn > 0, "flash.fade_in must be positive, got %v", c.Flash.FadeIn)
	check(c.Flash.FadeOut > 0, "flash.fade_out must be positive, got %v", c.Flash.FadeOut)
	check(c.Jumpscare.Cooldown >= 0, "jumpscare.cooldown must not be negative, got %v", c.Jumpscare.Cooldown)

	for key, cue := range c.Audio.Cues {
		check(cue.Volume >= 0 && cue.Volume <= 1, "audio.cues.%s.volume must be within [0, 1], got %v", key, cue.Volume)
	}

	return errors.Join(errs...)
}
