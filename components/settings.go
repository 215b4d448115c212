package components

import (
	cfg "github.com/automoto/lanerunner/config"
	"github.com/yohamta/donburi"
)

// SettingsData stores user preferences shown on the title screen
type SettingsData struct {
	MasterVolume int // 1-100
	SpeedPreset  cfg.SpeedPreset
	Debug        bool // Draw the debug overlay
}

var Settings = donburi.NewComponentType[SettingsData]()
