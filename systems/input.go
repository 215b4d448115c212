package systems

import (
	"runtime"

	"github.com/automoto/lanerunner/components"
	cfg "github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/shared/gesture"
	"github.com/automoto/lanerunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// MouseSource reads the left mouse button. Screen Y is flipped so swiping
// up is positive.
type MouseSource struct{}

func (MouseSource) Sample() (math.Vec2, bool) {
	x, y := ebiten.CursorPosition()
	return math.Vec2{X: float64(x), Y: float64(-y)}, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// TouchSource follows the first finger down until it lifts.
type TouchSource struct {
	ids    []ebiten.TouchID
	id     ebiten.TouchID
	active bool
	last   math.Vec2
}

func (s *TouchSource) Sample() (math.Vec2, bool) {
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])

	if s.active {
		for _, id := range s.ids {
			if id == s.id {
				s.last = touchPosition(id)
				return s.last, true
			}
		}
		s.active = false
		return s.last, false
	}

	if len(s.ids) == 0 {
		return s.last, false
	}
	s.id = s.ids[0]
	s.active = true
	s.last = touchPosition(s.id)
	return s.last, true
}

func touchPosition(id ebiten.TouchID) math.Vec2 {
	x, y := ebiten.TouchPosition(id)
	return math.Vec2{X: float64(x), Y: float64(-y)}
}

// AutoSource prefers touch and falls back to the mouse. A contact stays on
// the device that started it.
type AutoSource struct {
	touch    TouchSource
	mouse    MouseSource
	useTouch bool
	held     bool
}

func (s *AutoSource) Sample() (math.Vec2, bool) {
	if !s.held {
		s.useTouch = len(ebiten.AppendTouchIDs(nil)) > 0
	}
	var pos math.Vec2
	if s.useTouch {
		pos, s.held = s.touch.Sample()
	} else {
		pos, s.held = s.mouse.Sample()
	}
	return pos, s.held
}

// NewSource builds the pointer source selected on the command line.
func NewSource(id cfg.InputSourceID) gesture.Source {
	switch id {
	case cfg.InputSourceMouse:
		return MouseSource{}
	case cfg.InputSourceTouch:
		return &TouchSource{}
	}
	if runtime.GOOS == "android" || runtime.GOOS == "ios" {
		return &TouchSource{}
	}
	return &AutoSource{}
}

// UpdateGesture samples the pointer and hands the result to the runner.
// Must run BEFORE UpdateRunner in the system order.
func UpdateGesture(e *ecs.ECS) {
	entry, ok := tags.Runner.First(e.World)
	if !ok {
		return
	}
	g := components.Gesture.Get(entry)
	runner := components.Runner.Get(entry)
	if g.Source == nil || g.Interpreter == nil {
		return
	}

	signals := g.Interpreter.Sample(g.Source.Sample())
	if signals.Fired() || signals.Released {
		g.Last = signals
	}
	runner.Controller.Handle(signals)
}

// UpdateShortcuts handles keyboard shortcuts during a run.
func UpdateShortcuts(e *ecs.ECS) {
	entry, ok := tags.Runner.First(e.World)
	if !ok {
		return
	}
	ctrl := components.Runner.Get(entry).Controller

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		settings := GetOrCreateSettings(e)
		settings.Debug = !settings.Debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ResetRun(e)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		ctrl.AdjustSpeed(cfg.Shortcuts.SpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		ctrl.AdjustSpeed(-cfg.Shortcuts.SpeedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		ctrl.AdjustScale(cfg.Shortcuts.ScaleStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		ctrl.AdjustScale(-cfg.Shortcuts.ScaleStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		ctrl.ResetSpeed()
		ctrl.ResetScale()
	}
}
