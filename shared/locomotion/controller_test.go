package locomotion

import (
	"bytes"
	"log"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/shared/gamemath"
	"github.com/automoto/lanerunner/shared/gesture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

const frameDT = 1.0 / 60

func newController(t *testing.T, mutate func(*config.RunnerConfig)) *Controller {
	t.Helper()
	cfg := config.DefaultRunner()
	if mutate != nil {
		mutate(&cfg)
	}
	c := New(cfg, gamemath.Vec3{})
	c.SetMaxXPosition(10)
	return c
}

// tickUntil advances c until done reports true, failing after limit ticks.
func tickUntil(t *testing.T, c *Controller, dt float64, limit int, done func(Frame) bool) Frame {
	t.Helper()
	for i := 0; i < limit; i++ {
		f := c.Tick(dt)
		if done(f) {
			return f
		}
	}
	require.FailNow(t, "condition not reached", "after %d ticks", limit)
	return Frame{}
}

func TestLaneCenters(t *testing.T) {
	assert.Equal(t, [LaneCount]float64{-1, 1, 3, 5, 7}, LaneCenters(3, 2))

	c := newController(t, func(cfg *config.RunnerConfig) { cfg.LaneDistance = 1.5 })
	assert.Equal(t, -3.0, c.LaneCenter(0))
	assert.Equal(t, 0.0, c.LaneCenter(CenterLane))
	assert.Equal(t, 3.0, c.LaneCenter(4))
	assert.Equal(t, 3.0, c.LaneCenter(99))
	assert.Equal(t, -3.0, c.LaneCenter(-1))
}

func TestLaneChange(t *testing.T) {
	c := newController(t, nil)
	require.Equal(t, CenterLane, c.Lane())

	c.Command(gesture.Right, gesture.VerticalNone)
	assert.Equal(t, MovingRight, c.Lateral())

	// A second lane command mid-change is dropped.
	c.Tick(frameDT)
	c.Command(gesture.Left, gesture.VerticalNone)
	assert.Equal(t, MovingRight, c.Lateral())

	f := tickUntil(t, c, frameDT, 300, func(f Frame) bool { return f.Lateral == Idle })
	assert.Equal(t, 3, f.Lane)
	assert.Equal(t, c.LaneCenter(3), f.Position.X)

	c.Command(gesture.Left, gesture.VerticalNone)
	f = tickUntil(t, c, frameDT, 300, func(f Frame) bool { return f.Lateral == Idle })
	assert.Equal(t, CenterLane, f.Lane)
	assert.Equal(t, 0.0, f.Position.X)
}

func TestLaneChangeWhileStopped(t *testing.T) {
	c := newController(t, func(cfg *config.RunnerConfig) {
		cfg.AutoMoveForward = false
	})
	c.Command(gesture.Left, gesture.VerticalNone)
	c.CancelMovement()

	f := tickUntil(t, c, frameDT, 300, func(f Frame) bool { return f.Lateral == Idle })
	assert.Equal(t, 1, f.Lane)
	assert.Equal(t, 0.0, f.Speed)
}

func TestLaneStaysInRange(t *testing.T) {
	t.Run("edges", func(t *testing.T) {
		c := newController(t, nil)
		for i := 0; i < LaneCount+2; i++ {
			c.Command(gesture.Right, gesture.VerticalNone)
			tickUntil(t, c, frameDT, 300, func(f Frame) bool { return f.Lateral == Idle })
		}
		assert.Equal(t, LaneCount-1, c.Lane())

		c.Command(gesture.Right, gesture.VerticalNone)
		assert.Equal(t, Idle, c.Lateral())

		for i := 0; i < LaneCount+2; i++ {
			c.Command(gesture.Left, gesture.VerticalNone)
			tickUntil(t, c, frameDT, 300, func(f Frame) bool { return f.Lateral == Idle })
		}
		assert.Equal(t, 0, c.Lane())
	})

	t.Run("random input", func(t *testing.T) {
		c := newController(t, nil)
		rng := rand.New(rand.NewSource(7))
		laterals := []gesture.Lateral{gesture.LateralNone, gesture.Left, gesture.Right}
		verticals := []gesture.Vertical{gesture.VerticalNone, gesture.Jump, gesture.Slide}

		for i := 0; i < 5000; i++ {
			if rng.Intn(4) == 0 {
				c.Command(laterals[rng.Intn(3)], verticals[rng.Intn(3)])
			}
			f := c.Tick(frameDT)
			require.GreaterOrEqual(t, f.Lane, 0)
			require.Less(t, f.Lane, LaneCount)
			require.GreaterOrEqual(t, f.Position.X, c.LaneCenter(0))
			require.LessOrEqual(t, f.Position.X, c.LaneCenter(LaneCount-1))
		}
	})
}

func TestJump(t *testing.T) {
	c := newController(t, nil)
	c.Command(gesture.LateralNone, gesture.Jump)
	require.Equal(t, RisingJump, c.Vertical())

	c.Tick(frameDT)
	y := c.Position().Y
	assert.Greater(t, y, 0.0)

	// Jump and slide are ignored while airborne.
	c.Command(gesture.LateralNone, gesture.Jump)
	assert.Equal(t, RisingJump, c.Vertical())
	c.Command(gesture.LateralNone, gesture.Slide)
	assert.Equal(t, RisingJump, c.Vertical())
	assert.Equal(t, c.OriginalCapsuleHeight(), c.CapsuleHeight())

	f := tickUntil(t, c, frameDT, 500, func(f Frame) bool { return f.Vertical == FallingJump })
	assert.GreaterOrEqual(t, f.Position.Y, c.Config().JumpPeakHeight-c.Config().JumpTolerance)

	c.Command(gesture.LateralNone, gesture.Jump)
	assert.Equal(t, FallingJump, c.Vertical())

	f = tickUntil(t, c, frameDT, 500, func(f Frame) bool { return f.Vertical == Grounded })
	assert.Equal(t, 0.0, f.Position.Y)

	c.Command(gesture.LateralNone, gesture.Jump)
	assert.Equal(t, RisingJump, c.Vertical())
}

func TestJumpAndLaneTogether(t *testing.T) {
	c := newController(t, nil)
	c.Handle(gesture.Signals{Lateral: gesture.Left, Vertical: gesture.Jump, Active: true, Held: true})

	assert.Equal(t, RisingJump, c.Vertical())
	assert.Equal(t, MovingLeft, c.Lateral())
}

func TestSlide(t *testing.T) {
	c := newController(t, func(cfg *config.RunnerConfig) {
		cfg.Acceleration = 1000
		cfg.SpeedPreset = config.SpeedMedium
	})
	original := c.CapsuleHeight()

	c.Command(gesture.LateralNone, gesture.Slide)
	require.Equal(t, Sliding, c.Vertical())

	var f Frame
	for i := 0; i < 4; i++ {
		f = c.Tick(0.1)
	}
	assert.Equal(t, 4.0, f.Position.Z)
	assert.Equal(t, Sliding, f.Vertical)
	assert.Equal(t, original/4, f.CapsuleHeight)

	f = c.Tick(0.1)
	assert.Equal(t, 5.0, f.Position.Z)
	assert.Equal(t, Sliding, f.Vertical)

	f = c.Tick(0.1)
	assert.Equal(t, 6.0, f.Position.Z)
	assert.Equal(t, Grounded, f.Vertical)
	assert.Equal(t, original, f.CapsuleHeight)

	// Slide ends on its own, so a new command is accepted.
	c.Command(gesture.LateralNone, gesture.Jump)
	assert.Equal(t, RisingJump, c.Vertical())
}

func TestSpeed(t *testing.T) {
	t.Run("accelerates to target without overshoot", func(t *testing.T) {
		c := newController(t, nil)
		target := c.TargetSpeed()
		require.Equal(t, 10.0, target)

		prev := 0.0
		for i := 0; i < 120; i++ {
			f := c.Tick(frameDT)
			require.LessOrEqual(t, f.Speed, target)
			require.GreaterOrEqual(t, f.Speed, prev)
			prev = f.Speed
		}
		assert.Equal(t, target, c.Speed())
	})

	t.Run("decelerates to lowered target", func(t *testing.T) {
		c := newController(t, nil)
		tickUntil(t, c, frameDT, 200, func(f Frame) bool { return f.Speed == 10 })

		c.AdjustSpeed(-4)
		assert.Equal(t, 6.0, c.TargetSpeed())
		for i := 0; i < 60; i++ {
			f := c.Tick(frameDT)
			require.GreaterOrEqual(t, f.Speed, 6.0)
		}
		assert.Equal(t, 6.0, c.Speed())

		c.AdjustSpeed(-100)
		assert.Equal(t, 0.0, c.TargetSpeed())
	})

	t.Run("manual forward needs input", func(t *testing.T) {
		c := newController(t, func(cfg *config.RunnerConfig) { cfg.AutoMoveForward = false })
		c.Tick(frameDT)
		assert.Equal(t, 0.0, c.Speed())

		// Holding a contact still, below every threshold, drives the runner.
		in := gesture.New(config.GestureConfig{Threshold: 10, Sensitivity: 8})
		hold := math.Vec2{X: 5, Y: 5}
		for i := 0; i < 60; i++ {
			c.Handle(in.Sample(hold, true))
			c.Tick(frameDT)
		}
		assert.True(t, c.HasInput())
		assert.Greater(t, c.Speed(), 0.0)
		assert.Greater(t, c.Position().Z, 0.0)
		assert.Equal(t, Idle, c.Lateral())
		assert.Equal(t, Grounded, c.Vertical())

		c.Handle(in.Sample(hold, false))
		assert.False(t, c.HasInput())
		tickUntil(t, c, frameDT, 200, func(f Frame) bool { return f.Speed == 0 })

		// Frames with no contact at all keep it stopped.
		c.Handle(in.Sample(hold, false))
		c.Tick(frameDT)
		assert.Equal(t, 0.0, c.Speed())
	})

	t.Run("presets", func(t *testing.T) {
		tests := []struct {
			preset config.SpeedPreset
			want   float64
		}{
			{preset: config.SpeedSlow, want: 5},
			{preset: config.SpeedMedium, want: 10},
			{preset: config.SpeedFast, want: 20},
			{preset: config.SpeedCustom, want: 13},
		}
		for _, tt := range tests {
			c := newController(t, func(cfg *config.RunnerConfig) {
				cfg.SpeedPreset = tt.preset
				cfg.CustomSpeed = 13
			})
			assert.Equal(t, tt.want, c.DefaultSpeed(), tt.preset.String())
			assert.Equal(t, tt.want, c.TargetSpeed(), tt.preset.String())
		}
	})

	t.Run("negative custom speed never runs backwards", func(t *testing.T) {
		c := newController(t, func(cfg *config.RunnerConfig) {
			cfg.SpeedPreset = config.SpeedCustom
			cfg.CustomSpeed = -5
		})
		assert.Equal(t, 0.0, c.TargetSpeed())

		lastZ := c.Position().Z
		for i := 0; i < 60; i++ {
			f := c.Tick(frameDT)
			require.GreaterOrEqual(t, f.Speed, 0.0)
			require.GreaterOrEqual(t, f.Position.Z, lastZ)
			lastZ = f.Position.Z
		}

		cfg := c.Config()
		cfg.CustomSpeed = -8
		c.SetConfig(cfg)
		assert.Equal(t, 0.0, c.TargetSpeed())
	})
}

func TestScale(t *testing.T) {
	c := newController(t, nil)
	minScale := c.MinimumScale()

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		c.AdjustScale(rng.Float64()*4 - 3)
		ts := c.TargetScale()
		require.GreaterOrEqual(t, ts.X, minScale)
		require.GreaterOrEqual(t, ts.Y, minScale)
		require.GreaterOrEqual(t, ts.Z, minScale)

		f := c.Tick(frameDT)
		require.GreaterOrEqual(t, f.Scale.Y, minScale-1e-9)
	}

	c.AdjustScale(-100)
	assert.Equal(t, gamemath.Uniform(minScale), c.TargetScale())

	c.ResetScale()
	assert.Equal(t, c.DefaultScale(), c.Scale())
	assert.Equal(t, c.DefaultScale(), c.TargetScale())
}

func TestPlayerTop(t *testing.T) {
	c := newController(t, func(cfg *config.RunnerConfig) { cfg.StartHeight = 2 })
	assert.Equal(t, c.Position(), c.PlayerTop())

	c.AdjustScale(1)
	tickUntil(t, c, frameDT, 2000, func(f Frame) bool { return f.Scale == gamemath.Uniform(2) })
	top := c.PlayerTop()
	assert.InDelta(t, c.Position().Y+2, top.Y, 1e-9)
	assert.Equal(t, c.Position().Z, top.Z)
}

func TestFrameOutputs(t *testing.T) {
	c := newController(t, nil)
	tickUntil(t, c, frameDT, 200, func(f Frame) bool { return f.Speed == 10 })

	f := c.Tick(frameDT)
	assert.InDelta(t, 10, f.AnimatorSpeed, 1e-6)
	assert.True(t, f.Forward.Approximately(gamemath.Forward))

	c.Command(gesture.Right, gesture.VerticalNone)
	f = c.Tick(frameDT)
	assert.Greater(t, f.Forward.X, 0.0)
	assert.InDelta(t, 1, f.Forward.Length(), 1e-9)
}

func TestResetPlayer(t *testing.T) {
	start := gamemath.Vec3{X: 1, Y: 0.5, Z: 3}
	c := New(config.DefaultRunner(), start)
	c.SetMaxXPosition(10)

	c.Command(gesture.Right, gesture.Slide)
	c.AdjustScale(2)
	for i := 0; i < 30; i++ {
		c.Tick(frameDT)
	}
	c.ResetPlayer()

	f := c.Frame()
	assert.Equal(t, start, f.Position)
	assert.Equal(t, CenterLane, f.Lane)
	assert.Equal(t, Grounded, f.Vertical)
	assert.Equal(t, Idle, f.Lateral)
	assert.Equal(t, 0.0, f.Speed)
	assert.Equal(t, c.DefaultSpeed(), c.TargetSpeed())
	assert.Equal(t, gamemath.Uniform(1), f.Scale)
	assert.Equal(t, c.OriginalCapsuleHeight(), f.CapsuleHeight)
	assert.False(t, c.HasInput())
	assert.Equal(t, start.X-c.Capsule().W/2, c.Capsule().X)
}

func TestMissingMaxXWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	c := New(config.DefaultRunner(), gamemath.Vec3{})
	c.Command(gesture.Right, gesture.VerticalNone)
	c.Command(gesture.Left, gesture.VerticalNone)

	assert.Equal(t, 1, strings.Count(buf.String(), "Warning:"))
	assert.Equal(t, MovingRight, c.Lateral())
}

func TestSetConfig(t *testing.T) {
	c := newController(t, nil)
	centers := [LaneCount]float64{}
	for i := range centers {
		centers[i] = c.LaneCenter(i)
	}

	cfg := c.Config()
	cfg.LaneDistance = 4
	cfg.SpeedPreset = config.SpeedFast
	cfg.MinimumScale = 2
	c.SetConfig(cfg)

	for i := range centers {
		assert.Equal(t, centers[i], c.LaneCenter(i))
	}
	assert.Equal(t, 20.0, c.TargetSpeed())
	assert.Equal(t, gamemath.Uniform(2), c.TargetScale())
	// The current scale jumps to the new floor instead of easing up to it.
	assert.Equal(t, gamemath.Uniform(2), c.Scale())
	f := c.Tick(frameDT)
	assert.GreaterOrEqual(t, f.Scale.X, 2.0)

	// Lowering the floor leaves the current scale alone.
	cfg.MinimumScale = 0.5
	c.SetConfig(cfg)
	assert.Equal(t, gamemath.Uniform(2), c.Scale())
}
