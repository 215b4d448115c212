package factory

import (
	"github.com/automoto/lanerunner/archetypes"
	"github.com/automoto/lanerunner/components"
	"github.com/automoto/lanerunner/shared/trackdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTrack(ecs *ecs.ECS, track *trackdata.TrackData) *donburi.Entry {
	entry := archetypes.Track.Spawn(ecs)
	components.Track.SetValue(entry, components.TrackData{Track: track})
	return entry
}
