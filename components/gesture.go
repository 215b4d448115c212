package components

import (
	"github.com/automoto/lanerunner/shared/gesture"
	"github.com/yohamta/donburi"
)

// GestureData pairs the swipe interpreter with the pointer it reads.
type GestureData struct {
	Interpreter *gesture.Interpreter
	Source      gesture.Source
	Last        gesture.Signals // Last sample that fired or released
}

var Gesture = donburi.NewComponentType[GestureData]()
