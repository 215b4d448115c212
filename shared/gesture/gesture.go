// Package gesture turns a single pointer or touch contact into discrete
// runner commands.
package gesture

import (
	"fmt"

	"github.com/automoto/lanerunner/config"
	"github.com/yohamta/donburi/features/math"
)

// Vertical is the jump/slide half of a gesture.
type Vertical int

const (
	VerticalNone Vertical = iota
	Jump
	Slide
)

func (v Vertical) String() string {
	switch v {
	case VerticalNone:
		return "None"
	case Jump:
		return "Jump"
	case Slide:
		return "Slide"
	}
	return fmt.Sprintf("Vertical(%d)", int(v))
}

// Lateral is the lane-change half of a gesture.
type Lateral int

const (
	LateralNone Lateral = iota
	Left
	Right
)

func (l Lateral) String() string {
	switch l {
	case LateralNone:
		return "None"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Lateral(%d)", int(l))
}

// Signals is the result of one Sample.
type Signals struct {
	Lateral  Lateral
	Vertical Vertical
	Active   bool // a command fired on this sample
	Held     bool // a contact is down on this sample
	Released bool // the contact ended on this sample
}

// Fired reports whether the sample produced a command.
func (s Signals) Fired() bool {
	return s.Lateral != LateralNone || s.Vertical != VerticalNone
}

// State is the per-contact bookkeeping.
type State struct {
	Anchor  math.Vec2
	Current math.Vec2
	Active  bool
	Latched bool
}

// Interpreter classifies the displacement of a contact from where it began.
// Positions are expected with y growing upward.
type Interpreter struct {
	cfg   config.GestureConfig
	state State
}

func New(cfg config.GestureConfig) *Interpreter {
	return &Interpreter{cfg: cfg}
}

// SetConfig swaps thresholds. An in-progress contact keeps its anchor.
func (in *Interpreter) SetConfig(cfg config.GestureConfig) {
	in.cfg = cfg
}

func (in *Interpreter) Config() config.GestureConfig {
	return in.cfg
}

func (in *Interpreter) State() State {
	return in.state
}

// Reset drops any contact in progress without reporting a release.
func (in *Interpreter) Reset() {
	in.state = State{}
}

// Sample feeds one frame of input. At most one command is emitted per
// contact; both axes may fire together on that sample.
func (in *Interpreter) Sample(pos math.Vec2, active bool) Signals {
	if !active {
		if !in.state.Active {
			return Signals{}
		}
		in.state = State{}
		return Signals{Released: true}
	}

	if !in.state.Active {
		in.state = State{Anchor: pos, Current: pos, Active: true}
	}
	in.state.Current = pos
	if in.state.Latched {
		return Signals{Held: true}
	}

	dx := pos.X - in.state.Anchor.X
	dy := pos.Y - in.state.Anchor.Y
	vThreshold := in.cfg.Threshold
	hThreshold := in.cfg.Threshold * in.cfg.Sensitivity

	s := Signals{Held: true}
	switch {
	case dy > vThreshold:
		s.Vertical = Jump
	case dy < -vThreshold:
		s.Vertical = Slide
	}
	switch {
	case dx > hThreshold:
		s.Lateral = Right
	case dx < -hThreshold:
		s.Lateral = Left
	}

	if s.Fired() {
		in.state.Latched = true
		s.Active = true
	}
	return s
}
