package components

import (
	cfg "github.com/automoto/lanerunner/config"
	"github.com/yohamta/donburi"
)

// TuningData holds the hot-reload watcher for the tuning file.
type TuningData struct {
	Path    string
	Watcher *cfg.Watcher
	Reloads int
	LastErr error
}

var Tuning = donburi.NewComponentType[TuningData]()
