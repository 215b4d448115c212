package systems

import (
	"image/color"
	"math"

	"github.com/automoto/lanerunner/assets"
	"github.com/automoto/lanerunner/components"
	cfg "github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/shared/locomotion"
	"github.com/automoto/lanerunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// flashFrames is how long the body tint lasts after a jump or slide starts.
const flashFrames = 12

var (
	grassColor   = color.RGBA{R: 34, G: 70, B: 40, A: 255}
	jumpTint     = []float32{0.6, 0.85, 1, 1}
	slideTint    = []float32{1, 0.55, 0.3, 1}
	runnerShader = &ebiten.DrawRectShaderOptions{}
)

// DrawTrack renders the road, lane markers and roadside props.
func DrawTrack(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	trackEntry, ok := tags.Track.First(e.World)
	if !ok {
		return
	}
	track := components.Track.Get(trackEntry).Track
	runnerEntry, ok := tags.Runner.First(e.World)
	if !ok {
		return
	}
	ctrl := components.Runner.Get(runnerEntry).Controller

	screen.Fill(grassColor)

	ppu := cfg.Camera.PixelsPerUnit
	height := float64(screen.Bounds().Dy())
	nearZ := camera.Position.Y - (height-cfg.Camera.RunnerScreenY)/ppu - 1
	farZ := camera.Position.Y + cfg.Camera.RunnerScreenY/ppu + 1

	// Road surface covers all five lanes
	laneW := ctrl.Config().LaneDistance
	left, _ := WorldToScreen(camera, ctrl.LaneCenter(0)-laneW/2, 0)
	right, _ := WorldToScreen(camera, ctrl.LaneCenter(locomotion.LaneCount-1)+laneW/2, 0)
	vector.FillRect(screen, float32(left), 0, float32(right-left), float32(height), cfg.HUD.LaneColor, false)
	vector.FillRect(screen, float32(left)-2, 0, 2, float32(height), cfg.HUD.LaneEdgeColor, false)
	vector.FillRect(screen, float32(right), 0, 2, float32(height), cfg.HUD.LaneEdgeColor, false)

	// Level bounds
	edgeL, _ := WorldToScreen(camera, -track.Width/2, 0)
	edgeR, _ := WorldToScreen(camera, track.Width/2, 0)
	vector.StrokeLine(screen, float32(edgeL), 0, float32(edgeL), float32(height), 1, cfg.HUD.ShadowColor, false)
	vector.StrokeLine(screen, float32(edgeR), 0, float32(edgeR), float32(height), 1, cfg.HUD.ShadowColor, false)

	// Dashed dividers between lanes, scrolling with the camera
	spacing := cfg.HUD.MarkerSpacing
	dash := float32(spacing * ppu / 2)
	start := math.Floor(nearZ/spacing) * spacing
	for i := 0; i < locomotion.LaneCount-1; i++ {
		x := (ctrl.LaneCenter(i) + ctrl.LaneCenter(i+1)) / 2
		for z := start; z < farZ; z += spacing {
			sx, sy := WorldToScreen(camera, x, z)
			vector.FillRect(screen, float32(sx)-1, float32(sy)-dash, 2, dash, cfg.HUD.MarkerColor, false)
		}
	}

	for _, p := range track.PropsBetween(nearZ, farZ) {
		c, ok := cfg.HUD.PropColors[p.Kind]
		if !ok {
			c = cfg.White
		}
		sx, sy := WorldToScreen(camera, p.X, p.Z+p.L)
		vector.FillRect(screen, float32(sx), float32(sy), float32(p.W*ppu), float32(p.L*ppu), c, false)
	}
}

// DrawRunner renders the runner's shadow and body. Height above the ground
// lifts and enlarges the body, the capsule height sets its length.
func DrawRunner(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	runnerEntry, ok := tags.Runner.First(e.World)
	if !ok {
		return
	}
	runner := components.Runner.Get(runnerEntry)
	state := components.State.Get(runnerEntry)
	frame := runner.Frame
	ppu := cfg.Camera.PixelsPerUnit

	groundX, groundY := WorldToScreen(camera, frame.Position.X, frame.Position.Z)
	width := runner.Controller.Config().CollisionWidth * ppu * frame.Scale.X
	length := frame.CapsuleHeight / 2 * ppu * frame.Scale.Y

	shadow := cfg.HUD.ShadowColor
	shadow.A = cfg.HUD.ShadowAlpha
	vector.FillRect(screen, float32(groundX-width/2), float32(groundY-length/2), float32(width), float32(length), shadow, false)

	lift := 1 + frame.Position.Y*cfg.Camera.HeightScale
	w := width * lift
	l := length * lift
	x := groundX - w/2
	y := groundY - l/2 - frame.Position.Y*ppu*0.5

	drawStride(screen, runner, frame, x, y, w, l)
	drawRunnerBody(screen, state, x, y, w, l)
}

func drawStride(screen *ebiten.Image, runner *components.RunnerData, frame locomotion.Frame, x, y, w, l float64) {
	if runner.Stride == nil || frame.Vertical != locomotion.Grounded || frame.Speed <= 0 {
		return
	}
	legW := float32(w / 3)
	legL := float32(l / 3)
	offset := float32(l / 4)
	if runner.Stride.Frame()%2 == 1 {
		offset = -offset
	}
	c := cfg.HUD.RunnerColor
	c.R, c.G, c.B = c.R/2, c.G/2, c.B/2
	vector.FillRect(screen, float32(x)-legW/2, float32(y+l/2)+offset-legL/2, legW, legL, c, false)
	vector.FillRect(screen, float32(x+w)-legW/2, float32(y+l/2)-offset-legL/2, legW, legL, c, false)
}

func drawRunnerBody(screen *ebiten.Image, state *components.StateData, x, y, w, l float64) {
	if assets.TintShader == nil || w < 1 || l < 1 {
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(l), cfg.HUD.RunnerColor, false)
		return
	}

	flash := float32(0)
	tint := jumpTint
	switch state.CurrentState {
	case locomotion.RisingJump:
		flash = 1 - float32(state.StateTimer)/flashFrames
	case locomotion.Sliding:
		tint = slideTint
		flash = 1 - float32(state.StateTimer)/flashFrames
	}
	if flash < 0 {
		flash = 0
	}

	runnerShader.GeoM.Reset()
	runnerShader.GeoM.Translate(x, y)
	runnerShader.ColorScale.Reset()
	runnerShader.ColorScale.ScaleWithColor(cfg.HUD.RunnerColor)
	runnerShader.Uniforms = map[string]any{
		"Tint":  tint,
		"Flash": flash,
	}
	screen.DrawRectShader(int(w), int(l), assets.TintShader, runnerShader)
}
