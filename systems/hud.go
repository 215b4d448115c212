package systems

import (
	"fmt"

	"github.com/automoto/lanerunner/components"
	cfg "github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/fonts"
	"github.com/automoto/lanerunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudHint = "Swipe up: jump  down: slide  sideways: change lane  R: restart  Esc: menu"

// DrawHUD renders run stats in the top-left corner and the control hint
// along the bottom edge.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	runnerEntry, ok := tags.Runner.First(e.World)
	if !ok {
		return
	}
	runner := components.Runner.Get(runnerEntry)
	state := components.State.Get(runnerEntry)

	startZ := 0.0
	if trackEntry, ok := tags.Track.First(e.World); ok {
		startZ = components.Track.Get(trackEntry).Track.Spawn.Z
	}

	lines := []string{
		fmt.Sprintf("Distance %.0f", runner.Frame.Position.Z-startZ),
		fmt.Sprintf("Speed %.1f / %.1f", runner.Frame.Speed, runner.Controller.TargetSpeed()),
		fmt.Sprintf("Lane %d", runner.Frame.Lane+1),
		fmt.Sprintf("Jumps %d  Slides %d  Lanes %d", state.Jumps, state.Slides, state.LaneChanges),
	}

	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineHeight)
	for _, line := range lines {
		drawShadowedText(screen, line, x, y)
		y += int(cfg.HUD.LineHeight)
	}

	volume := fmt.Sprintf("Vol %d", GetMasterVolume())
	drawShadowedText(screen, volume, screen.Bounds().Dx()-64, int(cfg.HUD.Margin+cfg.HUD.LineHeight))

	text.Draw(screen, hudHint, fonts.Small.Get(), x, screen.Bounds().Dy()-int(cfg.HUD.Margin), cfg.HUD.TextColor)
}

func drawShadowedText(screen *ebiten.Image, s string, x, y int) {
	face := fonts.Regular.Get()
	text.Draw(screen, s, face, x+1, y+1, cfg.HUD.ShadowColor)
	text.Draw(screen, s, face, x, y, cfg.HUD.TextColor)
}
