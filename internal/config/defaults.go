package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/night.yaml
var defaultNightYAML []byte

// DefaultNightConfig returns the built-in night configuration.
// It mirrors defaults/night.yaml and is used when the embedded file cannot be
// parsed.
func DefaultNightConfig() NightConfig {
	return NightConfig{
		Night: NightSection{
			Duration: 120 * time.Second,
			TickRate: 33,
		},
		Power: PowerSection{
			Initial:     100,
			DoorDrain:   0.05,
			CameraDrain: 0.03,
			FlashDrain:  0.10,
		},
		Threat: ThreatSection{
			AdvancePeriod: 100,
			AdvanceChance: 0.3,
			Office:        3,
		},
		Office: OfficeSection{
			WarningWindow: 3 * time.Second,
			TrappedWindow: 5 * time.Second,
		},
		Flash: FlashSection{
			FadeIn:  100 * time.Millisecond,
			FadeOut: 400 * time.Millisecond,
		},
		Jumpscare: JumpscareSection{
			Cooldown: 2 * time.Second,
		},
		Cameras: []string{"Show Stage", "Dining Area", "Backstage"},
		Audio: AudioSection{
			Cues: map[string]CueAsset{
				"menu_loop":     {File: "assets/Tape.ogg", Volume: 0.5, Loop: true, Caption: "[an old tape hums]"},
				"office_loop":   {File: "assets/ambient.ogg", Volume: 1.0, Loop: true, Caption: "[the office buzzes]"},
				"camera_on":     {File: "assets/camIN.ogg", Volume: 1.0, Caption: "[monitor flickers on]"},
				"camera_off":    {File: "assets/camOUT.ogg", Volume: 1.0, Caption: "[monitor powers down]"},
				"camera_switch": {File: "assets/click.ogg", Volume: 1.0, Caption: "[click]"},
				"door_close":    {File: "assets/steps.ogg", Volume: 1.0, Caption: "[heavy steps behind the door]"},
				"flash":         {File: "assets/shutter.ogg", Volume: 1.0, Caption: "[shutter snap]"},
				"jumpscare":     {File: "assets/jumpscare.ogg", Volume: 1.0, Caption: "[SCREECH]"},
				"victory":       {File: "assets/6am.ogg", Volume: 1.0, Caption: "[6 AM chimes]"},
			},
		},
	}
}
