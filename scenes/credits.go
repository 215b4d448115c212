package scenes

import (
	"sync"

	cfg "github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// CreditsScene lists the credits until Back or Escape is pressed
type CreditsScene struct {
	session   *Session
	creditsUI *ui.CreditsUI
	once      sync.Once
	goBack    bool
}

func NewCreditsScene(s *Session) *CreditsScene {
	return &CreditsScene{session: s}
}

func (cs *CreditsScene) Update() {
	cs.once.Do(func() {
		cs.creditsUI = ui.NewCreditsUI(cfg.Menu.Credits, func() { cs.goBack = true })
	})
	cs.creditsUI.UI.Update()

	if cs.goBack || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		cs.session.Changer.ChangeScene(NewTitleScene(cs.session))
	}
}

func (cs *CreditsScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if cs.creditsUI == nil {
		return
	}
	cs.creditsUI.UI.Draw(screen)
}
