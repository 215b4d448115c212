package archetypes

import (
	"github.com/automoto/lanerunner/components"
	"github.com/automoto/lanerunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the single render layer used by every scene.
const LayerDefault ecs.LayerID = 0

var (
	Runner = newArchetype(
		tags.Runner,
		components.Runner,
		components.State,
		components.Gesture,
	)
	Track = newArchetype(
		tags.Track,
		components.Track,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Tuning = newArchetype(
		components.Tuning,
	)
	Pause = newArchetype(
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
