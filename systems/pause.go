package systems

import (
	"github.com/automoto/lanerunner/archetypes"
	"github.com/automoto/lanerunner/components"
	cfg "github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/fonts"
	"github.com/automoto/lanerunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const pauseHint = "P or tap: resume   Esc: menu"

// UpdatePause toggles pause on P. A tap or click also resumes.
// This system should run BEFORE the gameplay systems.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)

	toggle := inpututil.IsKeyJustPressed(ebiten.KeyP)
	if pause.IsPaused && pointerJustPressed() {
		toggle = true
	}
	if !toggle {
		return
	}

	pause.IsPaused = !pause.IsPaused
	PlaySFX(e, cfg.SoundMenuSelect)

	// A swipe held across the pause must not fire on resume
	if entry, ok := tags.Runner.First(e.World); ok {
		g := components.Gesture.Get(entry)
		g.Interpreter.Reset()
		components.Runner.Get(entry).Controller.CancelMovement()
	}
}

func pointerJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := "PAUSED"
	// Approximate width for the 28pt title font
	text.Draw(screen, title, fonts.Title.Get(), (width-len(title)*18)/2, height/2, cfg.Menu.TitleColor)
	text.Draw(screen, pauseHint, fonts.Small.Get(), (width-len(pauseHint)*5)/2, height/2+24, cfg.Menu.TextColor)
}

// GetOrCreatePause returns the singleton Pause component
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = archetypes.Pause.Spawn(e)
	}
	return components.Pause.Get(entry)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}
