package components

import (
	"github.com/automoto/lanerunner/shared/trackdata"
	"github.com/yohamta/donburi"
)

type TrackData struct {
	Track *trackdata.TrackData
}

var Track = donburi.NewComponentType[TrackData]()
