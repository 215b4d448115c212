package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/lanerunner/assets"
	"github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/fonts"
	"github.com/automoto/lanerunner/scenes"
	"github.com/automoto/lanerunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(tuning *config.Watcher) *Game {
	loadFonts()

	g := &Game{
		bounds: image.Rectangle{},
	}
	session := &scenes.Session{Changer: g, Tuning: tuning}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewRunnerScene(session)
	} else {
		g.scene = scenes.NewTitleScene(session)
	}

	return g
}

func loadFonts() {
	must := func(err error) {
		if err != nil {
			log.Fatal(err)
		}
	}
	must(fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, 12))
	must(fonts.LoadFontWithSize(fonts.Bold, gobold.TTF, 16))
	must(fonts.LoadFontWithSize(fonts.Title, gobold.TTF, 28))
	must(fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 9))
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML tuning file, reloaded when it changes")
	input := flag.String("input", config.InputSourceAuto.String(), "pointer source: auto, mouse or touch")
	skipMenu := flag.Bool("skip-menu", false, "start running immediately")
	debug := flag.Bool("debug", false, "show the debug overlay")
	track := flag.String("track", "", "track name under assets/tracks")
	flag.Parse()

	source, err := config.ParseInputSource(*input)
	if err != nil {
		log.Fatal(err)
	}
	config.Debug.InputSource = source
	config.Debug.SkipMenu = *skipMenu
	config.Debug.ShowOverlay = *debug
	config.Debug.TuningPath = *tuningPath
	config.Debug.Track = *track

	if *track != "" {
		if _, err := assets.LoadTrack(*track); err != nil {
			names, _ := assets.TrackNames()
			log.Fatalf("%v (available: %v)", err, names)
		}
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// A tuning file overrides saved settings
	var watcher *config.Watcher
	if *tuningPath != "" {
		if t, err := config.LoadTuning(*tuningPath); err != nil {
			log.Printf("Warning: Could not load tuning, using defaults: %v", err)
		} else {
			t.Apply()
		}
		watcher, err = config.NewWatcher(*tuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
