// Package locomotion is the runner's kinematic state machine: lane changes,
// jump and slide arcs, speed and scale easing.
package locomotion

import (
	"log"
	"math"

	"github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/shared/gamemath"
	"github.com/automoto/lanerunner/shared/gesture"
	"github.com/solarlune/resolv"
)

// CapsuleTag marks the runner's collision object.
const CapsuleTag = "runner"

const halfWidth = 0.5

// Frame is the per-tick output handed to the transform and animator.
type Frame struct {
	Position      gamemath.Vec3
	Forward       gamemath.Vec3
	Scale         gamemath.Vec3
	Speed         float64
	AnimatorSpeed float64 // distance covered per second this tick
	Lane          int
	Vertical      VerticalState
	Lateral       LateralState
	CapsuleHeight float64
}

// Controller owns the runner's kinematic state. It is advanced once per
// frame with Tick, after the frame's commands have been applied.
type Controller struct {
	cfg config.RunnerConfig

	start        gamemath.Vec3
	position     gamemath.Vec3
	lastPosition gamemath.Vec3
	forward      gamemath.Vec3
	ground       float64

	lane        int
	laneCenters [LaneCount]float64
	vertical    VerticalState
	lateral     LateralState
	slideStartZ float64

	speed       float64
	targetSpeed float64
	hasInput    bool

	scale        gamemath.Vec3
	targetScale  gamemath.Vec3
	defaultScale gamemath.Vec3

	capsule       *resolv.Object
	capsuleHeight float64
	startHeight   float64

	maxX       float64
	warnedMaxX bool

	animatorSpeed float64
}

// New places the runner at start, in the center lane.
func New(cfg config.RunnerConfig, start gamemath.Vec3) *Controller {
	height := cfg.CollisionHeight
	if height <= 0 {
		height = 1
	}
	startHeight := cfg.StartHeight
	if startHeight <= 0 {
		startHeight = 1
	}

	c := &Controller{
		cfg:           cfg,
		start:         start,
		laneCenters:   LaneCenters(start.X, cfg.LaneDistance),
		defaultScale:  gamemath.Uniform(1),
		capsuleHeight: height,
		startHeight:   startHeight,
	}
	c.capsule = resolv.NewObject(start.X-cfg.CollisionWidth/2, start.Y, cfg.CollisionWidth, height, CapsuleTag)
	c.ResetPlayer()
	return c
}

// SetConfig applies new tuning. Lane centers stay where they were built.
func (c *Controller) SetConfig(cfg config.RunnerConfig) {
	presetChanged := cfg.SpeedPreset != c.cfg.SpeedPreset || cfg.CustomSpeed != c.cfg.CustomSpeed
	c.cfg = cfg
	if presetChanged {
		c.targetSpeed = c.DefaultSpeed()
	}
	c.AdjustScale(0)
	c.scale = c.scale.Max(gamemath.Uniform(c.cfg.MinimumScale))
}

func (c *Controller) Config() config.RunnerConfig {
	return c.cfg
}

// Command starts a jump/slide and/or a lane change. Each half is dropped if
// its axis is already busy or the target lane does not exist.
func (c *Controller) Command(lateral gesture.Lateral, vertical gesture.Vertical) {
	if c.maxX == 0 && !c.warnedMaxX {
		log.Printf("Warning: runner cannot be bounded, SetMaxXPosition was never called or the level width is 0")
		c.warnedMaxX = true
	}
	c.hasInput = true

	if c.vertical == Grounded {
		switch vertical {
		case gesture.Jump:
			c.ground = c.position.Y
			c.vertical = RisingJump
		case gesture.Slide:
			c.slideStartZ = c.position.Z
			c.vertical = Sliding
			c.shrinkCapsule()
		}
	}

	if c.lateral == Idle {
		switch {
		case lateral == gesture.Right && c.lane < LaneCount-1:
			c.lateral = MovingRight
		case lateral == gesture.Left && c.lane > 0:
			c.lateral = MovingLeft
		}
	}
}

// CancelMovement marks the contact as released.
func (c *Controller) CancelMovement() {
	c.hasInput = false
}

// Handle applies one sample of gesture output. A held contact counts as
// input even before it has moved far enough to fire a command.
func (c *Controller) Handle(s gesture.Signals) {
	if s.Released || !s.Held {
		c.CancelMovement()
		return
	}
	c.hasInput = true
	if s.Active {
		c.Command(s.Lateral, s.Vertical)
	}
}

// Tick advances the runner by dt seconds.
func (c *Controller) Tick(dt float64) Frame {
	if dt < 0 {
		dt = 0
	}
	c.lastPosition = c.position

	c.updateSpeed(dt)
	c.position.Z += c.speed * dt
	c.updateVertical(dt)
	c.updateLateral(dt)
	c.updateScale(dt)
	c.updateFacing(dt)

	if dt > 0 {
		c.animatorSpeed = c.position.Sub(c.lastPosition).Length() / dt
	}
	c.syncCapsule()
	return c.Frame()
}

func (c *Controller) updateSpeed(dt float64) {
	switch {
	case !c.cfg.AutoMoveForward && !c.hasInput:
		c.speed = gamemath.Decelerate(c.speed, 0, c.cfg.Deceleration, dt)
	case c.targetSpeed < c.speed:
		c.speed = gamemath.Decelerate(c.speed, c.targetSpeed, c.cfg.Deceleration, dt)
	case c.targetSpeed > c.speed:
		c.speed = gamemath.Accelerate(c.speed, c.targetSpeed, c.cfg.Acceleration, dt)
	}
}

func (c *Controller) updateVertical(dt float64) {
	switch c.vertical {
	case RisingJump:
		apex := c.ground + c.cfg.JumpPeakHeight
		c.position.Y = gamemath.Lerp(c.position.Y, apex, c.cfg.JumpForceUp*dt)
		if math.Abs(apex-c.position.Y) <= c.cfg.JumpTolerance {
			c.vertical = FallingJump
		}
	case FallingJump:
		c.position.Y = gamemath.Lerp(c.position.Y, c.ground, c.cfg.JumpForceDown*dt)
		if c.position.Y-c.ground <= c.cfg.JumpTolerance {
			c.position.Y = c.ground
			c.vertical = Grounded
		}
	case Sliding:
		if c.position.Z-c.slideStartZ > c.cfg.SlideDistance {
			c.restoreCapsule()
			c.vertical = Grounded
		}
	}
}

func (c *Controller) updateLateral(dt float64) {
	var next int
	switch c.lateral {
	case MovingRight:
		next = c.lane + 1
	case MovingLeft:
		next = c.lane - 1
	default:
		c.position.X = c.laneCenters[c.lane]
		return
	}

	target := c.laneCenters[next]
	rate := math.Max(c.speed, c.cfg.LaneChangeMinRate)
	c.position.X = gamemath.Lerp(c.position.X, target, rate*dt)
	if math.Abs(target-c.position.X) <= c.cfg.LaneSnapEpsilon {
		c.position.X = target
		c.lane = next
		c.lateral = Idle
	}
}

func (c *Controller) updateScale(dt float64) {
	if c.scale.Approximately(c.targetScale) {
		c.scale = c.targetScale
		return
	}
	c.scale = c.scale.Lerp(c.targetScale, c.cfg.ScaleVelocity*dt)
}

func (c *Controller) updateFacing(dt float64) {
	moved := c.position.Sub(c.lastPosition)
	if moved.Length() < 1e-9 {
		return
	}
	facing := c.forward.Lerp(moved.Normalized(), c.speed*dt).Normalized()
	if facing != (gamemath.Vec3{}) {
		c.forward = facing
	}
}

func (c *Controller) shrinkCapsule() {
	c.capsule.H = c.capsuleHeight * c.cfg.SlideHeightFactor
	c.capsule.Update()
}

func (c *Controller) restoreCapsule() {
	c.capsule.H = c.capsuleHeight
	c.capsule.Update()
}

func (c *Controller) syncCapsule() {
	c.capsule.X = c.position.X - c.capsule.W/2
	c.capsule.Y = c.position.Y
	c.capsule.Update()
}

// Frame snapshots the current state without advancing it.
func (c *Controller) Frame() Frame {
	return Frame{
		Position:      c.position,
		Forward:       c.forward,
		Scale:         c.scale,
		Speed:         c.speed,
		AnimatorSpeed: c.animatorSpeed,
		Lane:          c.lane,
		Vertical:      c.vertical,
		Lateral:       c.lateral,
		CapsuleHeight: c.capsule.H,
	}
}

// DefaultSpeed is the target speed of the configured preset.
func (c *Controller) DefaultSpeed() float64 {
	return PresetSpeed(c.cfg)
}

// PresetSpeed maps a preset to its forward speed. A negative custom speed
// is treated as standing still.
func PresetSpeed(cfg config.RunnerConfig) float64 {
	switch cfg.SpeedPreset {
	case config.SpeedSlow:
		return 5
	case config.SpeedMedium:
		return 10
	case config.SpeedFast:
		return 20
	}
	return math.Max(0, cfg.CustomSpeed)
}

// AdjustSpeed shifts the target speed by delta, never below zero.
func (c *Controller) AdjustSpeed(delta float64) {
	c.targetSpeed = math.Max(0, c.targetSpeed+delta)
}

// ResetSpeed stops the runner and restores the preset target.
func (c *Controller) ResetSpeed() {
	c.speed = 0
	c.targetSpeed = c.DefaultSpeed()
}

// AdjustScale grows the target scale uniformly by delta, never below
// MinimumScale on any axis.
func (c *Controller) AdjustScale(delta float64) {
	c.targetScale = c.targetScale.Add(gamemath.Uniform(delta)).Max(gamemath.Uniform(c.MinimumScale()))
}

func (c *Controller) ResetScale() {
	c.scale = c.defaultScale
	c.targetScale = c.defaultScale
}

// SetMaxXPosition bounds the runner to a level centered on X = 0.
func (c *Controller) SetMaxXPosition(levelWidth float64) {
	c.maxX = levelWidth * halfWidth
}

// ResetPlayer returns the runner to its start position and center lane.
func (c *Controller) ResetPlayer() {
	c.position = c.start
	c.lastPosition = c.start
	c.ground = c.start.Y
	c.forward = gamemath.Forward
	c.lane = CenterLane
	c.vertical = Grounded
	c.lateral = Idle
	c.slideStartZ = c.start.Z
	c.hasInput = false
	c.animatorSpeed = 0

	c.ResetSpeed()
	c.ResetScale()
	c.restoreCapsule()
	c.syncCapsule()
}

// PlayerTop is the top of the runner, accounting for its vertical scale.
func (c *Controller) PlayerTop() gamemath.Vec3 {
	return c.position.Add(gamemath.Up.Scale(c.startHeight*c.scale.Y - c.startHeight))
}

func (c *Controller) Speed() float64 {
	return c.speed
}

func (c *Controller) TargetSpeed() float64 {
	return c.targetSpeed
}

func (c *Controller) Scale() gamemath.Vec3 {
	return c.scale
}

func (c *Controller) TargetScale() gamemath.Vec3 {
	return c.targetScale
}

func (c *Controller) DefaultScale() gamemath.Vec3 {
	return c.defaultScale
}

func (c *Controller) MinimumScale() float64 {
	return c.cfg.MinimumScale
}

func (c *Controller) StartHeight() float64 {
	return c.startHeight
}

func (c *Controller) MaxXPosition() float64 {
	return c.maxX
}

func (c *Controller) Lane() int {
	return c.lane
}

func (c *Controller) Vertical() VerticalState {
	return c.vertical
}

func (c *Controller) Lateral() LateralState {
	return c.lateral
}

func (c *Controller) Position() gamemath.Vec3 {
	return c.position
}

func (c *Controller) Forward() gamemath.Vec3 {
	return c.forward
}

func (c *Controller) HasInput() bool {
	return c.hasInput
}

func (c *Controller) Capsule() *resolv.Object {
	return c.capsule
}

func (c *Controller) CapsuleHeight() float64 {
	return c.capsule.H
}

func (c *Controller) OriginalCapsuleHeight() float64 {
	return c.capsuleHeight
}

// LaneCenter returns the X of lane i, clamped to a valid lane.
func (c *Controller) LaneCenter(i int) float64 {
	if i < 0 {
		i = 0
	}
	if i >= LaneCount {
		i = LaneCount - 1
	}
	return c.laneCenters[i]
}
