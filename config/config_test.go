package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	r := DefaultRunner()
	assert.Equal(t, 1.0, r.LaneDistance)
	assert.Equal(t, 10.0, r.JumpPeakHeight)
	assert.Equal(t, 6.0, r.JumpForceUp)
	assert.Equal(t, 8.0, r.JumpForceDown)
	assert.Equal(t, 5.0, r.SlideDistance)
	assert.Equal(t, SpeedMedium, r.SpeedPreset)
	assert.Equal(t, 0.1, r.MinimumScale)

	g := DefaultGesture()
	assert.Equal(t, 10.0, g.Threshold)
	assert.Equal(t, 8.0, g.Sensitivity)

	require.NoError(t, Tuning{Runner: r, Gesture: g}.Validate())
}

func TestVolume(t *testing.T) {
	tests := []struct {
		master int
		want   float64
	}{
		{master: 100, want: 1},
		{master: 50, want: 0.5},
		{master: 1, want: 0.01},
		{master: 0, want: 0.01},
		{master: 250, want: 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, VolumeScale(tt.master), 1e-9, "master=%d", tt.master)
	}
}

func TestClampVolumeSliderRange(t *testing.T) {
	// Every position of the title volume slider is a valid master volume.
	for v := Audio.MinVolume; v <= Audio.MaxVolume; v++ {
		require.Equal(t, v, ClampVolume(v))
	}
	assert.Equal(t, Audio.MinVolume, ClampVolume(Audio.MinVolume-1))
	assert.Equal(t, Audio.MaxVolume, ClampVolume(Audio.MaxVolume+1))

	// Buttons step onward from a slider value that sits between steps.
	assert.Equal(t, 50, StepVolume(37, 1))
	assert.Equal(t, 25, StepVolume(37, -1))
}

func TestStepVolume(t *testing.T) {
	tests := []struct {
		name   string
		master int
		dir    int
		want   int
	}{
		{name: "up from step", master: 25, dir: 1, want: 50},
		{name: "up between steps", master: 30, dir: 1, want: 50},
		{name: "up at top", master: 100, dir: 1, want: 100},
		{name: "down from step", master: 25, dir: -1, want: 10},
		{name: "down at bottom", master: 1, dir: -1, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StepVolume(tt.master, tt.dir))
		})
	}
}

func TestParseInputSource(t *testing.T) {
	id, err := ParseInputSource("Touch")
	require.NoError(t, err)
	assert.Equal(t, InputSourceTouch, id)
	assert.Equal(t, "mouse", InputSourceMouse.String())

	_, err = ParseInputSource("gamepad")
	assert.Error(t, err)
}
