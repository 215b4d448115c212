package gesture

import "github.com/yohamta/donburi/features/math"

// Source supplies one pointer sample per frame, y up.
type Source interface {
	Sample() (math.Vec2, bool)
}

// Frame is one recorded sample.
type Frame struct {
	Pos    math.Vec2
	Active bool
}

// ScriptedSource replays a fixed list of frames, then reports no contact.
type ScriptedSource struct {
	Frames []Frame
	next   int
}

func NewScriptedSource(frames ...Frame) *ScriptedSource {
	return &ScriptedSource{Frames: frames}
}

func (s *ScriptedSource) Sample() (math.Vec2, bool) {
	if s.next >= len(s.Frames) {
		return math.Vec2{}, false
	}
	f := s.Frames[s.next]
	s.next++
	return f.Pos, f.Active
}

// Done reports whether every frame has been replayed.
func (s *ScriptedSource) Done() bool {
	return s.next >= len(s.Frames)
}

// Swipe builds a press at from, a drag to to over steps samples and a
// release.
func Swipe(from, to math.Vec2, steps int) []Frame {
	if steps < 1 {
		steps = 1
	}
	frames := []Frame{{Pos: from, Active: true}}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		frames = append(frames, Frame{
			Pos: math.Vec2{
				X: from.X + (to.X-from.X)*t,
				Y: from.Y + (to.Y-from.Y)*t,
			},
			Active: true,
		})
	}
	return append(frames, Frame{Pos: to, Active: false})
}
