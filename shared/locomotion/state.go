package locomotion

import "fmt"

// VerticalState is the jump/slide cycle.
type VerticalState int

const (
	Grounded VerticalState = iota
	RisingJump
	FallingJump
	Sliding
)

func (s VerticalState) String() string {
	switch s {
	case Grounded:
		return "Grounded"
	case RisingJump:
		return "RisingJump"
	case FallingJump:
		return "FallingJump"
	case Sliding:
		return "Sliding"
	}
	return fmt.Sprintf("VerticalState(%d)", int(s))
}

// Airborne reports whether the state is part of a jump.
func (s VerticalState) Airborne() bool {
	return s == RisingJump || s == FallingJump
}

// LateralState is the lane-change cycle.
type LateralState int

const (
	Idle LateralState = iota
	MovingLeft
	MovingRight
)

func (s LateralState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case MovingLeft:
		return "MovingLeft"
	case MovingRight:
		return "MovingRight"
	}
	return fmt.Sprintf("LateralState(%d)", int(s))
}

const (
	LaneCount  = 5
	CenterLane = 2
)

// LaneCenters spaces LaneCount lanes d apart around start, which becomes
// the center lane.
func LaneCenters(start, d float64) [LaneCount]float64 {
	var centers [LaneCount]float64
	for i := range centers {
		centers[i] = start + float64(i-CenterLane)*d
	}
	return centers
}
