package factory

import (
	"github.com/automoto/lanerunner/archetypes"
	"github.com/automoto/lanerunner/assets/animations"
	"github.com/automoto/lanerunner/components"
	cfg "github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/shared/gamemath"
	"github.com/automoto/lanerunner/shared/gesture"
	"github.com/automoto/lanerunner/shared/locomotion"
	"github.com/automoto/lanerunner/shared/trackdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// strideFrames is the number of poses in one running cycle.
const strideFrames = 4

// CreateRunner spawns the runner at the track's spawn point. The track may
// override the lane spacing.
func CreateRunner(ecs *ecs.ECS, track *trackdata.TrackData, source gesture.Source) *donburi.Entry {
	runner := archetypes.Runner.Spawn(ecs)

	runnerCfg := cfg.Runner
	if track.LaneDistance > 0 {
		runnerCfg.LaneDistance = track.LaneDistance
	}

	start := gamemath.Vec3{X: track.Spawn.X, Y: track.Spawn.Y, Z: track.Spawn.Z}
	ctrl := locomotion.New(runnerCfg, start)
	ctrl.SetMaxXPosition(track.Width)
	ctrl.Capsule().Data = runner

	frame := ctrl.Frame()
	components.Runner.SetValue(runner, components.RunnerData{
		Controller: ctrl,
		Frame:      frame,
		Previous:   frame,
		Stride:     animations.NewAnimation(0, strideFrames-1, 1, cfg.Camera.StrideLength),
	})
	components.State.SetValue(runner, components.StateData{
		CurrentState:  locomotion.Grounded,
		PreviousState: locomotion.Grounded,
	})
	components.Gesture.SetValue(runner, components.GestureData{
		Interpreter: gesture.New(cfg.Gesture),
		Source:      source,
	})

	return runner
}
