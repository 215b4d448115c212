package systems

import (
	"log"

	"github.com/automoto/lanerunner/components"
	cfg "github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTuning applies the tuning file when the watcher reports a change.
// A file that fails to load leaves the running values untouched.
func UpdateTuning(e *ecs.ECS) {
	entry, ok := components.Tuning.First(e.World)
	if !ok {
		return
	}
	tuning := components.Tuning.Get(entry)
	if tuning.Watcher == nil || !tuning.Watcher.Poll() {
		return
	}

	t, err := cfg.LoadTuning(tuning.Path)
	if err != nil {
		tuning.LastErr = err
		log.Printf("Warning: Could not reload tuning: %v", err)
		return
	}
	tuning.LastErr = nil
	tuning.Reloads++
	t.Apply()
	log.Printf("Tuning reloaded from %s", tuning.Path)

	runnerEntry, ok := tags.Runner.First(e.World)
	if !ok {
		return
	}
	ctrl := components.Runner.Get(runnerEntry).Controller
	runnerCfg := t.Runner
	runnerCfg.LaneDistance = ctrl.Config().LaneDistance
	ctrl.SetConfig(runnerCfg)
	components.Gesture.Get(runnerEntry).Interpreter.SetConfig(t.Gesture)
	GetOrCreateSettings(e).SpeedPreset = t.Runner.SpeedPreset
}
