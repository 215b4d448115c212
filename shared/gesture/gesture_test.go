package gesture

import (
	"testing"

	"github.com/automoto/lanerunner/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func testConfig() config.GestureConfig {
	return config.GestureConfig{Threshold: 10, Sensitivity: 8}
}

func TestSampleClassification(t *testing.T) {
	tests := []struct {
		name         string
		to           math.Vec2
		wantVertical Vertical
		wantLateral  Lateral
	}{
		{name: "swipe up jumps", to: math.Vec2{X: 0, Y: 15}, wantVertical: Jump},
		{name: "swipe down slides", to: math.Vec2{X: 0, Y: -15}, wantVertical: Slide},
		{name: "swipe right", to: math.Vec2{X: 90, Y: 0}, wantLateral: Right},
		{name: "swipe left", to: math.Vec2{X: -90, Y: 0}, wantLateral: Left},
		{name: "diagonal fires both", to: math.Vec2{X: 90, Y: 15}, wantVertical: Jump, wantLateral: Right},
		{name: "vertical at threshold is nothing", to: math.Vec2{X: 0, Y: 10}},
		{name: "lateral under sensitivity is nothing", to: math.Vec2{X: 79, Y: 0}},
		{name: "lateral at threshold is nothing", to: math.Vec2{X: 80, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New(testConfig())
			assert.Equal(t, Signals{Held: true}, in.Sample(math.Vec2{}, true))

			got := in.Sample(tt.to, true)
			assert.True(t, got.Held)
			assert.Equal(t, tt.wantVertical, got.Vertical)
			assert.Equal(t, tt.wantLateral, got.Lateral)
			assert.Equal(t, got.Fired(), got.Active)
			assert.Equal(t, got.Fired(), in.State().Latched)
		})
	}
}

func TestSampleAnchorsAtPress(t *testing.T) {
	in := New(testConfig())
	in.Sample(math.Vec2{X: 100, Y: 100}, true)

	// Small steps add up against the anchor.
	for y := 104.0; y <= 108; y += 4 {
		assert.False(t, in.Sample(math.Vec2{X: 100, Y: y}, true).Fired())
	}
	got := in.Sample(math.Vec2{X: 100, Y: 112}, true)
	assert.Equal(t, Jump, got.Vertical)
}

func TestSampleLatch(t *testing.T) {
	in := New(testConfig())
	in.Sample(math.Vec2{}, true)
	assert.Equal(t, Jump, in.Sample(math.Vec2{Y: 20}, true).Vertical)

	// Further movement on the same contact is ignored.
	assert.Equal(t, Signals{Held: true}, in.Sample(math.Vec2{Y: 60}, true))
	assert.Equal(t, Signals{Held: true}, in.Sample(math.Vec2{X: 200, Y: -60}, true))

	released := in.Sample(math.Vec2{X: 200, Y: -60}, false)
	assert.True(t, released.Released)
	assert.False(t, released.Held)
	assert.False(t, released.Fired())
	assert.Equal(t, State{}, in.State())

	// A new press starts over from its own anchor.
	in.Sample(math.Vec2{X: 200, Y: -60}, true)
	assert.Equal(t, math.Vec2{X: 200, Y: -60}, in.State().Anchor)
	assert.Equal(t, Slide, in.Sample(math.Vec2{X: 200, Y: -75}, true).Vertical)
}

func TestReleaseWithoutDisplacement(t *testing.T) {
	in := New(testConfig())
	assert.Equal(t, Signals{Held: true}, in.Sample(math.Vec2{X: 5, Y: 5}, true))
	assert.Equal(t, Signals{Held: true}, in.Sample(math.Vec2{X: 5, Y: 5}, true))

	got := in.Sample(math.Vec2{X: 5, Y: 5}, false)
	assert.Equal(t, Signals{Released: true}, got)
	assert.Equal(t, State{}, in.State())

	// Idle frames after a release report nothing.
	assert.Equal(t, Signals{}, in.Sample(math.Vec2{}, false))

	in.Sample(math.Vec2{X: 50, Y: 50}, true)
	assert.Equal(t, math.Vec2{X: 50, Y: 50}, in.State().Anchor)
}

func TestReset(t *testing.T) {
	in := New(testConfig())
	in.Sample(math.Vec2{}, true)
	in.Sample(math.Vec2{Y: 20}, true)
	in.Reset()

	assert.Equal(t, State{}, in.State())
	assert.Equal(t, Signals{}, in.Sample(math.Vec2{}, false))
}

func TestSetConfig(t *testing.T) {
	in := New(testConfig())
	in.SetConfig(config.GestureConfig{Threshold: 30, Sensitivity: 1})
	in.Sample(math.Vec2{}, true)

	assert.False(t, in.Sample(math.Vec2{Y: 20}, true).Fired())
	assert.Equal(t, Right, in.Sample(math.Vec2{X: 31}, true).Lateral)
}

func TestScriptedSource(t *testing.T) {
	src := NewScriptedSource(Swipe(math.Vec2{}, math.Vec2{X: 0, Y: 40}, 4)...)
	in := New(testConfig())

	var fired []Signals
	released := 0
	for !src.Done() {
		s := in.Sample(src.Sample())
		if s.Fired() {
			fired = append(fired, s)
		}
		if s.Released {
			released++
		}
	}

	if assert.Len(t, fired, 1) {
		assert.Equal(t, Jump, fired[0].Vertical)
	}
	assert.Equal(t, 1, released)

	pos, active := src.Sample()
	assert.False(t, active)
	assert.Equal(t, math.Vec2{}, pos)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "Jump", Jump.String())
	assert.Equal(t, "Right", Right.String())
	assert.Equal(t, "Vertical(7)", Vertical(7).String())
}
