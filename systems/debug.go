package systems

import (
	"fmt"

	"github.com/automoto/lanerunner/components"
	cfg "github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/fonts"
	"github.com/automoto/lanerunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Side view panel, in screen pixels
const (
	panelW     = 120
	panelH     = 110
	panelScale = 8 // pixels per world unit
)

// DrawDebug renders the locomotion state, a side view of the collision
// capsule and the active swipe. Toggled with F3.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}
	runnerEntry, ok := tags.Runner.First(e.World)
	if !ok {
		return
	}
	ctrl := components.Runner.Get(runnerEntry).Controller
	gestureData := components.Gesture.Get(runnerEntry)
	c := cfg.HUD.DebugColor

	lines := []string{
		fmt.Sprintf("vertical %s  lateral %s", ctrl.Vertical(), ctrl.Lateral()),
		fmt.Sprintf("pos %.2f %.2f %.2f", ctrl.Position().X, ctrl.Position().Y, ctrl.Position().Z),
		fmt.Sprintf("fwd %.2f %.2f %.2f", ctrl.Forward().X, ctrl.Forward().Y, ctrl.Forward().Z),
		fmt.Sprintf("scale %.2f -> %.2f", ctrl.Scale().Y, ctrl.TargetScale().Y),
		fmt.Sprintf("capsule %.2f / %.2f", ctrl.CapsuleHeight(), ctrl.OriginalCapsuleHeight()),
		fmt.Sprintf("max x %.2f  input %v", ctrl.MaxXPosition(), ctrl.HasInput()),
		fmt.Sprintf("last swipe %s %s", gestureData.Last.Vertical, gestureData.Last.Lateral),
		fmt.Sprintf("tps %.0f", ebiten.ActualTPS()),
	}
	if tuningEntry, ok := components.Tuning.First(e.World); ok {
		tuning := components.Tuning.Get(tuningEntry)
		line := fmt.Sprintf("tuning reloads %d", tuning.Reloads)
		if tuning.LastErr != nil {
			line += "  (error)"
		}
		lines = append(lines, line)
	}

	small := fonts.Small.Get()
	x := screen.Bounds().Dx() - panelW - int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin) + panelH + 12
	for _, line := range lines {
		text.Draw(screen, line, small, x-60, y, c)
		y += 11
	}

	drawCapsulePanel(screen, ctrl.Capsule().X, ctrl.Capsule().Y, ctrl.Capsule().W, ctrl.Capsule().H, ctrl.Position().X)
	drawSwipe(screen, gestureData)
}

// drawCapsulePanel draws the capsule from behind: X across, Y up.
func drawCapsulePanel(screen *ebiten.Image, objX, objY, objW, objH, runnerX float64) {
	left := float32(screen.Bounds().Dx() - panelW - int(cfg.HUD.Margin))
	top := float32(cfg.HUD.Margin)
	vector.FillRect(screen, left, top, panelW, panelH, cfg.BlackOverlay, false)

	groundY := top + panelH - 10
	vector.StrokeLine(screen, left, groundY, left+panelW, groundY, 1, cfg.HUD.LaneEdgeColor, false)

	centerX := left + panelW/2
	x := centerX + float32((objX-runnerX)*panelScale)
	y := groundY - float32((objY+objH)*panelScale)
	vector.StrokeRect(screen, x, y, float32(objW*panelScale), float32(objH*panelScale), 1, cfg.HUD.CapsuleColor, false)
}

// drawSwipe draws the contact from its anchor to where it is now.
func drawSwipe(screen *ebiten.Image, g *components.GestureData) {
	state := g.Interpreter.State()
	if !state.Active {
		return
	}
	// Sources report Y up, screen space is Y down.
	ax, ay := float32(state.Anchor.X), float32(-state.Anchor.Y)
	cx, cy := float32(state.Current.X), float32(-state.Current.Y)
	vector.StrokeCircle(screen, ax, ay, 4, 1, cfg.HUD.DebugColor, false)
	vector.StrokeLine(screen, ax, ay, cx, cy, 1, cfg.HUD.DebugColor, false)
}
