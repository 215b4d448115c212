package systems

import (
	"github.com/automoto/lanerunner/archetypes"
	"github.com/automoto/lanerunner/components"
	cfg "github.com/automoto/lanerunner/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the global audio and runner values.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, components.SettingsData{
			MasterVolume: GetMasterVolume(),
			SpeedPreset:  cfg.Runner.SpeedPreset,
			Debug:        cfg.Debug.ShowOverlay,
		})
	}
	return components.Settings.Get(entry)
}

// StepMasterVolume moves the master volume one step and persists it.
func StepMasterVolume(e *ecs.ECS, dir int) int {
	settings := GetOrCreateSettings(e)
	settings.MasterVolume = cfg.StepVolume(settings.MasterVolume, dir)
	SetMasterVolume(settings.MasterVolume)
	SaveCurrentSettings(settings)
	PlaySFX(e, cfg.SoundMenuNavigate)
	return settings.MasterVolume
}

// ApplyMasterVolume sets the master volume from the title slider. Saving is
// left to the caller so a drag does not write settings every frame.
func ApplyMasterVolume(e *ecs.ECS, volume int, persist bool) int {
	settings := GetOrCreateSettings(e)
	settings.MasterVolume = cfg.ClampVolume(volume)
	SetMasterVolume(settings.MasterVolume)
	if persist {
		SaveCurrentSettings(settings)
	}
	return settings.MasterVolume
}

// CycleSpeedPreset selects the next speed preset and persists it.
func CycleSpeedPreset(e *ecs.ECS) cfg.SpeedPreset {
	settings := GetOrCreateSettings(e)
	presets := cfg.SettingsMenu.SpeedPresets
	next := presets[0]
	for i, p := range presets {
		if p == settings.SpeedPreset {
			next = presets[(i+1)%len(presets)]
			break
		}
	}
	settings.SpeedPreset = next
	cfg.Runner.SpeedPreset = next
	SaveCurrentSettings(settings)
	PlaySFX(e, cfg.SoundMenuNavigate)
	return next
}

// GetSpeedPresetName returns the display name for a speed preset
func GetSpeedPresetName(p cfg.SpeedPreset) string {
	switch p {
	case cfg.SpeedSlow:
		return "Slow"
	case cfg.SpeedMedium:
		return "Medium"
	case cfg.SpeedFast:
		return "Fast"
	}
	return "Custom"
}
