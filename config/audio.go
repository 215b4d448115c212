package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundLand
	SoundSlide
	SoundLaneChange
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// Tone describes a synthesized cue. Frequency glides from StartHz to EndHz.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Gain     float64 // 0.0-1.0 before master volume
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate          int
	DefaultMasterVolume int // 1-100
	MinVolume           int
	MaxVolume           int
	FadeSeconds         float64 // attack/release ramp applied to every tone
}

// SoundConfig maps sound IDs to synthesized tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:          44100,
		DefaultMasterVolume: 100,
		MinVolume:           1,
		MaxVolume:           100,
		FadeSeconds:         0.01,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundJump:         {StartHz: 330, EndHz: 660, Duration: 0.12, Gain: 0.35},
			SoundLand:         {StartHz: 180, EndHz: 110, Duration: 0.08, Gain: 0.4},
			SoundSlide:        {StartHz: 520, EndHz: 220, Duration: 0.18, Gain: 0.3},
			SoundLaneChange:   {StartHz: 440, EndHz: 480, Duration: 0.05, Gain: 0.2},
			SoundMenuNavigate: {StartHz: 600, EndHz: 600, Duration: 0.04, Gain: 0.25},
			SoundMenuSelect:   {StartHz: 700, EndHz: 900, Duration: 0.09, Gain: 0.3},
		},
	}
}

// VolumeScale converts a 1-100 master volume into a player volume.
func VolumeScale(master int) float64 {
	return float64(ClampVolume(master)) / 100
}

// ClampVolume keeps a master volume inside [MinVolume, MaxVolume].
func ClampVolume(v int) int {
	if v < Audio.MinVolume {
		return Audio.MinVolume
	}
	if v > Audio.MaxVolume {
		return Audio.MaxVolume
	}
	return v
}
