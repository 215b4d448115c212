package config

// SettingsMenuConfig contains title screen settings controls
type SettingsMenuConfig struct {
	VolumeSteps  []int // Master volume values cycled by the -/+ buttons
	SpeedPresets []SpeedPreset
	StorageKey   string // gdata item key for saved settings
	AppName      string // gdata application name
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		VolumeSteps:  []int{1, 10, 25, 50, 75, 100},
		SpeedPresets: []SpeedPreset{SpeedSlow, SpeedMedium, SpeedFast},
		StorageKey:   "settings",
		AppName:      "lanerunner",
	}
}

// StepVolume moves master to the next (dir > 0) or previous (dir < 0)
// entry of VolumeSteps.
func StepVolume(master, dir int) int {
	steps := SettingsMenu.VolumeSteps
	if len(steps) == 0 {
		return ClampVolume(master)
	}
	if dir > 0 {
		for _, s := range steps {
			if s > master {
				return s
			}
		}
		return steps[len(steps)-1]
	}
	for i := len(steps) - 1; i >= 0; i-- {
		if steps[i] < master {
			return steps[i]
		}
	}
	return steps[0]
}
