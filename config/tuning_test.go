package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTuning(t *testing.T) {
	base := Tuning{Runner: DefaultRunner(), Gesture: DefaultGesture()}

	tests := []struct {
		name     string
		content  string
		wantErr  bool
		validate func(t *testing.T, got Tuning)
	}{
		{
			name:    "empty document keeps defaults",
			content: "",
			validate: func(t *testing.T, got Tuning) {
				assert.Equal(t, base, got)
			},
		},
		{
			name: "partial override",
			content: `runner:
  jump_peak_height: 4
gesture:
  threshold: 20
`,
			validate: func(t *testing.T, got Tuning) {
				assert.Equal(t, 4.0, got.Runner.JumpPeakHeight)
				assert.Equal(t, 20.0, got.Gesture.Threshold)
				assert.Equal(t, base.Runner.JumpForceUp, got.Runner.JumpForceUp)
				assert.Equal(t, base.Gesture.Sensitivity, got.Gesture.Sensitivity)
			},
		},
		{
			name:    "speed preset by name",
			content: "runner:\n  speed_preset: fast\n",
			validate: func(t *testing.T, got Tuning) {
				assert.Equal(t, SpeedFast, got.Runner.SpeedPreset)
			},
		},
		{
			name:    "speed preset by number",
			content: "runner:\n  speed_preset: 3\n",
			validate: func(t *testing.T, got Tuning) {
				assert.Equal(t, SpeedCustom, got.Runner.SpeedPreset)
			},
		},
		{
			name:    "unknown speed preset",
			content: "runner:\n  speed_preset: warp\n",
			wantErr: true,
		},
		{
			name:    "non-positive lane distance",
			content: "runner:\n  lane_distance: 0\n",
			wantErr: true,
		},
		{
			name:    "slide factor above one",
			content: "runner:\n  slide_height_factor: 1.5\n",
			wantErr: true,
		},
		{
			name:    "negative custom speed",
			content: "runner:\n  speed_preset: custom\n  custom_speed: -5\n",
			wantErr: true,
		},
		{
			name:    "zero custom speed stands still",
			content: "runner:\n  speed_preset: custom\n  custom_speed: 0\n",
			validate: func(t *testing.T, got Tuning) {
				assert.Equal(t, 0.0, got.Runner.CustomSpeed)
			},
		},
		{
			name:    "malformed yaml",
			content: "runner: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTuning([]byte(tt.content), base)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, got)
		})
	}
}

func TestLoadTuning(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("reads file over current values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tuning.yaml")
		require.NoError(t, os.WriteFile(path, []byte("runner:\n  custom_speed: 42\n"), 0o644))

		got, err := LoadTuning(path)
		require.NoError(t, err)
		assert.Equal(t, 42.0, got.Runner.CustomSpeed)
		assert.Equal(t, Runner.LaneDistance, got.Runner.LaneDistance)
	})
}

func TestSpeedPresetString(t *testing.T) {
	assert.Equal(t, "slow", SpeedSlow.String())
	assert.Equal(t, "custom", SpeedCustom.String())
	assert.Equal(t, "SpeedPreset(9)", SpeedPreset(9).String())

	p, err := ParseSpeedPreset(" Medium ")
	require.NoError(t, err)
	assert.Equal(t, SpeedMedium, p)
}
