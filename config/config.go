package config

import "image/color"

// SpeedPreset selects the runner's default forward speed.
type SpeedPreset int

const (
	SpeedSlow SpeedPreset = iota
	SpeedMedium
	SpeedFast
	SpeedCustom
)

// RunnerConfig contains all locomotion tuning for the runner
type RunnerConfig struct {
	// Lanes
	LaneDistance      float64 `yaml:"lane_distance"`        // World units between adjacent lane centers
	LaneSnapEpsilon   float64 `yaml:"lane_snap_epsilon"`    // Distance at which a lane change snaps to the center
	LaneChangeMinRate float64 `yaml:"lane_change_min_rate"` // Lerp rate floor used when the runner is slow or stopped

	// Jump
	JumpPeakHeight float64 `yaml:"jump_peak_height"` // Apex height above the ground
	JumpForceUp    float64 `yaml:"jump_force_up"`    // Lerp rate while rising
	JumpForceDown  float64 `yaml:"jump_force_down"`  // Lerp rate while falling
	JumpTolerance  float64 `yaml:"jump_tolerance"`   // Distance from apex/ground that ends a phase

	// Slide
	SlideDistance     float64 `yaml:"slide_distance"`      // Forward travel covered by one slide
	SlideHeightFactor float64 `yaml:"slide_height_factor"` // Capsule height multiplier while sliding

	// Speed
	SpeedPreset     SpeedPreset `yaml:"speed_preset"`
	CustomSpeed     float64     `yaml:"custom_speed"` // Used when SpeedPreset is SpeedCustom
	Acceleration    float64     `yaml:"acceleration"`
	Deceleration    float64     `yaml:"deceleration"`
	AutoMoveForward bool        `yaml:"auto_move_forward"` // When false the runner only moves while a contact is held

	// Scale
	ScaleVelocity float64 `yaml:"scale_velocity"`
	MinimumScale  float64 `yaml:"minimum_scale"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
	StartHeight     float64 `yaml:"start_height"` // Mesh height, 0 falls back to a unit height
}

// GestureConfig contains swipe recognition thresholds
type GestureConfig struct {
	Threshold   float64 `yaml:"threshold"`   // Vertical distance (pixels) that triggers a jump or slide
	Sensitivity float64 `yaml:"sensitivity"` // Multiplier on Threshold for lane-change swipes
}

// CameraConfig contains camera follow and projection values
type CameraConfig struct {
	PixelsPerUnit     float64 // World unit to screen pixel scale
	RunnerScreenY     float64 // Screen Y where the runner is drawn
	FollowSmoothing   float64 // How fast the camera follows the runner laterally (0.0-1.0)
	HeightScale       float64 // Extra sprite scale per unit of jump height
	LandingDipDepth   float64 // Pixels the view drops when the runner lands
	LandingDipSeconds float64 // Duration of the landing dip tween
	StrideLength      float64 // World units per stride animation frame
}

// TrackConfig selects the track segment that tiles the endless run
type TrackConfig struct {
	Dir          string // Embedded directory holding .tmx tracks
	DefaultTrack string // Track stem used when no -track flag is given
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin        float64
	LineHeight    float64
	TextColor     color.RGBA
	ShadowColor   color.RGBA
	DebugColor    color.RGBA
	CapsuleColor  color.RGBA
	LaneColor     color.RGBA
	LaneEdgeColor color.RGBA
	RunnerColor   color.RGBA
	ShadowAlpha   uint8
	MarkerSpacing float64 // World units between lane markers
	MarkerColor   color.RGBA
	PropColors    map[string]color.RGBA
}

// MenuConfig contains title and credits screen values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	Title           string
	Credits         []string
}

// ShortcutsConfig contains keyboard shortcut step sizes
type ShortcutsConfig struct {
	SpeedStep float64 // Target speed change per Up/Down press
	ScaleStep float64 // Target scale change per PageUp/PageDown press
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool   // Skip menu and go directly to the run
	ShowOverlay bool   // Draw state and capsule overlay
	TuningPath  string // Optional YAML tuning file, watched for changes
	InputSource InputSourceID
	Track       string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Runner RunnerConfig
var Gesture GestureConfig
var Camera CameraConfig
var Track TrackConfig
var HUD HUDConfig
var Menu MenuConfig
var Shortcuts ShortcutsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Asphalt      = color.RGBA{R: 40, G: 42, B: 54, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Lane Runner",
	}

	Runner = DefaultRunner()
	Gesture = DefaultGesture()

	Camera = CameraConfig{
		PixelsPerUnit:     24,
		RunnerScreenY:     300,
		FollowSmoothing:   0.15,
		HeightScale:       0.06,
		LandingDipDepth:   6,
		LandingDipSeconds: 0.25,
		StrideLength:      0.6,
	}

	Track = TrackConfig{
		Dir:          "tracks",
		DefaultTrack: "runner_level_01",
	}

	HUD = HUDConfig{
		Margin:        8,
		LineHeight:    14,
		TextColor:     White,
		ShadowColor:   color.RGBA{R: 0, G: 0, B: 0, A: 160},
		DebugColor:    LightGreen,
		CapsuleColor:  color.RGBA{R: 0, G: 255, B: 0, A: 120},
		LaneColor:     Asphalt,
		LaneEdgeColor: color.RGBA{R: 90, G: 92, B: 110, A: 255},
		RunnerColor:   BrightOrange,
		ShadowAlpha:   90,
		MarkerSpacing: 4,
		MarkerColor:   color.RGBA{R: 200, G: 200, B: 210, A: 255},
		PropColors: map[string]color.RGBA{
			"tree":  {R: 40, G: 140, B: 60, A: 255},
			"rock":  {R: 120, G: 110, B: 100, A: 255},
			"light": BrightYellow,
		},
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:      BrightOrange,
		TextColor:       White,
		Title:           "LANE RUNNER",
		Credits: []string{
			"Design & code: the Lane Runner team",
			"Built with Ebitengine and donburi",
			"Fonts: Go font family",
		},
	}

	Shortcuts = ShortcutsConfig{
		SpeedStep: 2,
		ScaleStep: 0.25,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:    false,
		ShowOverlay: false,
		InputSource: InputSourceAuto,
		Track:       "",
	}
}

// DefaultRunner returns the compiled-in locomotion defaults.
func DefaultRunner() RunnerConfig {
	return RunnerConfig{
		LaneDistance:      1,
		LaneSnapEpsilon:   0.01,
		LaneChangeMinRate: 10,

		JumpPeakHeight: 10,
		JumpForceUp:    6,
		JumpForceDown:  8,
		JumpTolerance:  1,

		SlideDistance:     5,
		SlideHeightFactor: 0.25,

		SpeedPreset:     SpeedMedium,
		CustomSpeed:     10,
		Acceleration:    10,
		Deceleration:    20,
		AutoMoveForward: true,

		ScaleVelocity: 2,
		MinimumScale:  0.1,

		CollisionWidth:  0.5,
		CollisionHeight: 2,
		StartHeight:     0,
	}
}

// DefaultGesture returns the compiled-in swipe thresholds.
func DefaultGesture() GestureConfig {
	return GestureConfig{
		Threshold:   10,
		Sensitivity: 8,
	}
}
