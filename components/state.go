package components

import (
	"github.com/automoto/lanerunner/shared/locomotion"
	"github.com/yohamta/donburi"
)

// StateData tracks how long the runner has been in its vertical state.
type StateData struct {
	CurrentState  locomotion.VerticalState
	PreviousState locomotion.VerticalState
	StateTimer    int // Frames spent in CurrentState
	LaneChanges   int
	Jumps         int
	Slides        int
}

var State = donburi.NewComponentType[StateData]()
