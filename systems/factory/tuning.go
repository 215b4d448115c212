package factory

import (
	"github.com/automoto/lanerunner/archetypes"
	"github.com/automoto/lanerunner/components"
	cfg "github.com/automoto/lanerunner/config"
	"github.com/yohamta/donburi/ecs"
)

// CreateTuning registers the tuning watcher with the world. watcher may be
// nil when no tuning file was given.
func CreateTuning(ecs *ecs.ECS, path string, watcher *cfg.Watcher) {
	entry := archetypes.Tuning.Spawn(ecs)
	components.Tuning.SetValue(entry, components.TuningData{
		Path:    path,
		Watcher: watcher,
	})
}
