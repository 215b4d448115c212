package scenes

import (
	"os"
	"sync"

	cfg "github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/systems"
	"github.com/automoto/lanerunner/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene shows the title menu
type TitleScene struct {
	ecs         *ecs.ECS
	session     *Session
	titleUI     *ui.TitleUI
	once        sync.Once
	shouldPlay  bool
	showCredits bool
}

func NewTitleScene(s *Session) *TitleScene {
	return &TitleScene{session: s}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)

	// Update ECS for audio
	ts.ecs.Update()
	ts.titleUI.Update()

	if ts.shouldPlay || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ts.session.Changer.ChangeScene(NewRunnerScene(ts.session))
		return
	}
	if ts.showCredits {
		ts.session.Changer.ChangeScene(NewCreditsScene(ts.session))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		os.Exit(0)
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Menu.BackgroundColor)

	if ts.ecs == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	systems.PreloadAllSFX()

	ts.ecs = ecs.NewECS(donburi.NewWorld())
	ts.ecs.AddSystem(systems.UpdateAudio)

	ts.titleUI = ui.NewTitleUI(
		ts.ecs,
		func() { ts.shouldPlay = true },
		func() { ts.showCredits = true },
		func() { os.Exit(0) },
	)
}
