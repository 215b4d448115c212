package systems

import (
	"github.com/automoto/lanerunner/components"
	cfg "github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/shared/locomotion"
	"github.com/automoto/lanerunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRunner advances the locomotion controller by one frame.
func UpdateRunner(e *ecs.ECS) {
	entry, ok := tags.Runner.First(e.World)
	if !ok {
		return
	}
	runner := components.Runner.Get(entry)
	state := components.State.Get(entry)

	dt := 1.0 / float64(ebiten.TPS())
	runner.Previous = runner.Frame
	runner.Frame = runner.Controller.Tick(dt)

	if runner.Stride != nil && runner.Frame.Vertical == locomotion.Grounded {
		runner.Stride.Update(runner.Frame.AnimatorSpeed * dt)
	}

	updateRunnerState(e, state, runner.Previous, runner.Frame)
}

// updateRunnerState tracks state changes and queues their sound cues
func updateRunnerState(e *ecs.ECS, state *components.StateData, prev, cur locomotion.Frame) {
	if cur.Vertical != state.CurrentState {
		state.PreviousState = state.CurrentState
		state.CurrentState = cur.Vertical
		state.StateTimer = 0

		switch cur.Vertical {
		case locomotion.RisingJump:
			state.Jumps++
			PlaySFX(e, cfg.SoundJump)
		case locomotion.Sliding:
			state.Slides++
			PlaySFX(e, cfg.SoundSlide)
		case locomotion.Grounded:
			if state.PreviousState == locomotion.FallingJump {
				PlaySFX(e, cfg.SoundLand)
				StartLandingDip(e)
			}
		}
	} else {
		state.StateTimer++
	}

	if prev.Lateral == locomotion.Idle && cur.Lateral != locomotion.Idle {
		PlaySFX(e, cfg.SoundLaneChange)
	}
	if cur.Lane != prev.Lane {
		state.LaneChanges++
	}
}

// ResetRun puts the runner back at the start of the track.
func ResetRun(e *ecs.ECS) {
	entry, ok := tags.Runner.First(e.World)
	if !ok {
		return
	}
	runner := components.Runner.Get(entry)
	runner.Controller.ResetPlayer()
	runner.Frame = runner.Controller.Frame()
	runner.Previous = runner.Frame
	if runner.Stride != nil {
		runner.Stride.Restart()
	}

	components.State.SetValue(entry, components.StateData{})
	components.Gesture.Get(entry).Interpreter.Reset()

	if camEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(camEntry)
		camera.Position.X = runner.Frame.Position.X
		camera.Position.Y = runner.Frame.Position.Z
		camera.Dip = 0
		camera.DipTween = nil
	}
}
