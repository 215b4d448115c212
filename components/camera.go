package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData follows the runner. Position is in world units: X across the
// lanes, Y along the track.
type CameraData struct {
	Position math.Vec2
	Dip      float64      // Screen pixels the view is pushed down
	DipTween *gween.Tween // Active landing dip, nil when settled
}

var Camera = donburi.NewComponentType[CameraData]()
