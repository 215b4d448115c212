package systems

import (
	"github.com/automoto/lanerunner/components"
	"github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateLandingDip(camera)

	runnerEntry, ok := tags.Runner.First(e.World)
	if !ok {
		return
	}
	frame := components.Runner.Get(runnerEntry).Frame

	// Lateral follow is smoothed, forward follow is locked so the runner
	// stays on its screen row.
	camera.Position.X += (frame.Position.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y = frame.Position.Z
}

// StartLandingDip pushes the view down and eases it back.
func StartLandingDip(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.DipTween = gween.New(
		float32(config.Camera.LandingDipDepth), 0,
		float32(config.Camera.LandingDipSeconds), ease.OutQuad,
	)
	camera.Dip = config.Camera.LandingDipDepth
}

func updateLandingDip(camera *components.CameraData) {
	if camera.DipTween == nil {
		return
	}
	v, finished := camera.DipTween.Update(float32(1.0 / float64(ebiten.TPS())))
	camera.Dip = float64(v)
	if finished {
		camera.Dip = 0
		camera.DipTween = nil
	}
}

// WorldToScreen projects a world point on the track plane to screen pixels.
func WorldToScreen(camera *components.CameraData, x, z float64) (float64, float64) {
	ppu := config.Camera.PixelsPerUnit
	sx := float64(config.C.Width)/2 + (x-camera.Position.X)*ppu
	sy := config.Camera.RunnerScreenY - (z-camera.Position.Y)*ppu + camera.Dip
	return sx, sy
}
