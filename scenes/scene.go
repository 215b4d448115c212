package scenes

import cfg "github.com/automoto/lanerunner/config"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session carries what outlives a single scene
type Session struct {
	Changer SceneChanger
	Tuning  *cfg.Watcher // nil when no tuning file is watched
}
