package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tuning is the hot-reloadable subset of the configuration.
type Tuning struct {
	Runner  RunnerConfig  `yaml:"runner"`
	Gesture GestureConfig `yaml:"gesture"`
}

// CurrentTuning snapshots the live Runner and Gesture values.
func CurrentTuning() Tuning {
	return Tuning{Runner: Runner, Gesture: Gesture}
}

// Apply installs t as the live Runner and Gesture values.
func (t Tuning) Apply() {
	Runner = t.Runner
	Gesture = t.Gesture
}

// LoadTuning reads a YAML tuning file on top of the current values. Keys
// absent from the file keep their current value.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := ParseTuning(data, CurrentTuning())
	if err != nil {
		return Tuning{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// ParseTuning decodes data over base.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects values the controller cannot run with.
func (t Tuning) Validate() error {
	r := t.Runner
	switch {
	case r.LaneDistance <= 0:
		return fmt.Errorf("runner.lane_distance must be positive, got %v", r.LaneDistance)
	case r.LaneSnapEpsilon <= 0:
		return fmt.Errorf("runner.lane_snap_epsilon must be positive, got %v", r.LaneSnapEpsilon)
	case r.JumpTolerance <= 0:
		return fmt.Errorf("runner.jump_tolerance must be positive, got %v", r.JumpTolerance)
	case r.SlideHeightFactor <= 0 || r.SlideHeightFactor > 1:
		return fmt.Errorf("runner.slide_height_factor must be in (0, 1], got %v", r.SlideHeightFactor)
	case r.MinimumScale <= 0:
		return fmt.Errorf("runner.minimum_scale must be positive, got %v", r.MinimumScale)
	case r.CustomSpeed < 0:
		return fmt.Errorf("runner.custom_speed must not be negative, got %v", r.CustomSpeed)
	case r.Acceleration < 0 || r.Deceleration < 0:
		return fmt.Errorf("runner acceleration and deceleration must not be negative")
	case t.Gesture.Threshold <= 0:
		return fmt.Errorf("gesture.threshold must be positive, got %v", t.Gesture.Threshold)
	case t.Gesture.Sensitivity <= 0:
		return fmt.Errorf("gesture.sensitivity must be positive, got %v", t.Gesture.Sensitivity)
	}
	return nil
}

var speedPresetNames = map[SpeedPreset]string{
	SpeedSlow:   "slow",
	SpeedMedium: "medium",
	SpeedFast:   "fast",
	SpeedCustom: "custom",
}

func (p SpeedPreset) String() string {
	if name, ok := speedPresetNames[p]; ok {
		return name
	}
	return fmt.Sprintf("SpeedPreset(%d)", int(p))
}

// ParseSpeedPreset maps a preset name to its SpeedPreset.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range speedPresetNames {
		if n == name {
			return p, nil
		}
	}
	return SpeedMedium, fmt.Errorf("unknown speed preset %q", s)
}

// UnmarshalYAML accepts either a preset name or its number.
func (p *SpeedPreset) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		if _, ok := speedPresetNames[SpeedPreset(n)]; !ok {
			return fmt.Errorf("speed_preset %d out of range", n)
		}
		*p = SpeedPreset(n)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("speed_preset: %w", err)
	}
	parsed, err := ParseSpeedPreset(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML writes the preset by name.
func (p SpeedPreset) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}
