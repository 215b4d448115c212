package components

import (
	"github.com/automoto/lanerunner/assets/animations"
	"github.com/automoto/lanerunner/shared/locomotion"
	"github.com/yohamta/donburi"
)

// RunnerData wraps the locomotion controller owned by the runner entity.
type RunnerData struct {
	Controller *locomotion.Controller
	Frame      locomotion.Frame // Output of the latest Tick
	Previous   locomotion.Frame // Output of the Tick before that
	Stride     *animations.Animation
}

var Runner = donburi.NewComponentType[RunnerData]()
