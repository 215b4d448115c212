package scenes

import (
	"log"
	"sync"

	"github.com/automoto/lanerunner/archetypes"
	"github.com/automoto/lanerunner/assets"
	cfg "github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/systems"
	"github.com/automoto/lanerunner/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RunnerScene is the endless run itself
type RunnerScene struct {
	ecs     *ecs.ECS
	session *Session
	once    sync.Once
}

func NewRunnerScene(s *Session) *RunnerScene {
	return &RunnerScene{session: s}
}

func (rs *RunnerScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		rs.session.Changer.ChangeScene(NewTitleScene(rs.session))
	}
}

func (rs *RunnerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RunnerScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders, drawing untinted: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system runs first so cues queued last frame play now
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddSystem(systems.UpdatePause)

	// Gesture must be sampled before the runner ticks
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateGesture))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateShortcuts))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateRunner))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Tuning reloads while paused too
	ecs.AddSystem(systems.UpdateTuning)

	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawTrack)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawRunner)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawHUD)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawDebug)
	ecs.AddRenderer(archetypes.LayerDefault, systems.DrawPause)

	rs.ecs = ecs

	// Settings carry the menu's choices into the run
	systems.GetOrCreateSettings(rs.ecs)
	systems.GetOrCreateAudio(rs.ecs)

	track := assets.MustLoadTrack(cfg.Debug.Track)
	factory.CreateTrack(rs.ecs, track)
	factory.CreateRunner(rs.ecs, track, systems.NewSource(cfg.Debug.InputSource))
	factory.CreateCamera(rs.ecs, track.Spawn.X, track.Spawn.Z)
	factory.CreateTuning(rs.ecs, cfg.Debug.TuningPath, rs.session.Tuning)
}
