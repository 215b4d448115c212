package tags

import "github.com/yohamta/donburi"

var (
	Runner = donburi.NewTag().SetName("Runner")
	Track  = donburi.NewTag().SetName("Track")
)
