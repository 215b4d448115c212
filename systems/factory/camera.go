package factory

import (
	"github.com/automoto/lanerunner/archetypes"
	"github.com/automoto/lanerunner/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera starts the camera on x, z so the first frame does not pan.
func CreateCamera(ecs *ecs.ECS, x, z float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: z},
	})
}
