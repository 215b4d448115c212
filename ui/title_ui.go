package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/lanerunner/config"
	"github.com/automoto/lanerunner/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI holds the ebitenui interface for the title screen
type TitleUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Callbacks
	OnPlay    func()
	OnCredits func()
	OnExit    func()

	// Widget references for updates
	volumeLabel  *widget.Label
	volumeSlider *widget.Slider
	speedButton  *widget.Button

	volumeUnsaved bool // slider moved by a drag that has not ended yet

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewTitleUI creates the title menu. Volume and speed changes go straight
// to the settings systems of e.
func NewTitleUI(e *ecs.ECS, onPlay, onCredits, onExit func()) *TitleUI {
	tui := &TitleUI{
		ecs:       e,
		OnPlay:    onPlay,
		OnCredits: onCredits,
		OnExit:    onExit,
	}

	tui.titleFace, tui.normalFace, tui.smallFace = loadFaces()
	tui.buildUI()

	return tui
}

// loadFaces returns the title, normal and small Go font faces
func loadFaces() (text.Face, text.Face, text.Face) {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	return &text.GoTextFace{Source: fontSource, Size: 28},
		&text.GoTextFace{Source: fontSource, Size: 14},
		&text.GoTextFace{Source: fontSource, Size: 10}
}

func (tui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &tui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	contentContainer.AddChild(tui.menuButton("Play", func() {
		systems.PlaySFX(tui.ecs, cfg.SoundMenuSelect)
		tui.OnPlay()
	}))
	contentContainer.AddChild(tui.buildVolumeRow())

	settings := systems.GetOrCreateSettings(tui.ecs)
	tui.speedButton = tui.menuButton(speedLabel(settings.SpeedPreset), func() {
		systems.CycleSpeedPreset(tui.ecs)
		tui.UpdateUI()
	})
	contentContainer.AddChild(tui.speedButton)

	contentContainer.AddChild(tui.menuButton("Credits", func() {
		systems.PlaySFX(tui.ecs, cfg.SoundMenuSelect)
		tui.OnCredits()
	}))
	contentContainer.AddChild(tui.menuButton("Exit", tui.OnExit))

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Swipe with the mouse or a finger to run", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildVolumeRow lays out "-  [slider]  +" with the value label after it
func (tui *TitleUI) buildVolumeRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(tui.smallButton("-", func() {
		systems.StepMasterVolume(tui.ecs, -1)
		tui.UpdateUI()
	}))

	tui.volumeSlider = widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(cfg.Audio.MinVolume, cfg.Audio.MaxVolume),
		widget.SliderOpts.InitialCurrent(systems.GetMasterVolume()),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(100, 14),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.SliderOpts.Images(
			&widget.SliderTrackImage{
				Idle:  image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
				Hover: image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			},
			&widget.ButtonImage{
				Idle:    image.NewNineSliceColor(color.RGBA{180, 180, 180, 255}),
				Hover:   image.NewNineSliceColor(color.RGBA{255, 255, 200, 255}),
				Pressed: image.NewNineSliceColor(color.RGBA{200, 200, 200, 255}),
			},
		),
		widget.SliderOpts.FixedHandleSize(6),
		widget.SliderOpts.PageSizeFunc(func() int {
			return 10
		}),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			if args.Current == systems.GetMasterVolume() {
				return
			}
			systems.ApplyMasterVolume(tui.ecs, args.Current, !args.Dragging)
			tui.volumeUnsaved = args.Dragging
			if tui.volumeLabel != nil {
				tui.volumeLabel.Label = volumeLabel(systems.GetMasterVolume())
			}
		}),
	)
	row.AddChild(tui.volumeSlider)

	row.AddChild(tui.smallButton("+", func() {
		systems.StepMasterVolume(tui.ecs, 1)
		tui.UpdateUI()
	}))

	tui.volumeLabel = widget.NewLabel(
		widget.LabelOpts.Text(volumeLabel(systems.GetMasterVolume()), &tui.normalFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColor,
		}),
	)
	row.AddChild(tui.volumeLabel)

	return row
}

func (tui *TitleUI) menuButton(label string, onClick func()) *widget.Button {
	return newButton(label, 150, 22, &tui.normalFace, onClick)
}

func (tui *TitleUI) smallButton(label string, onClick func()) *widget.Button {
	return newButton(label, 24, 22, &tui.normalFace, onClick)
}

func newButton(label string, w, h int, face *text.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w, h),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func volumeLabel(v int) string {
	return fmt.Sprintf("Volume %3d", v)
}

func speedLabel(p cfg.SpeedPreset) string {
	return "Speed: " + systems.GetSpeedPresetName(p)
}

// UpdateUI refreshes labels from the current settings
func (tui *TitleUI) UpdateUI() {
	if tui.volumeLabel != nil {
		tui.volumeLabel.Label = volumeLabel(systems.GetMasterVolume())
	}
	if tui.volumeSlider != nil {
		tui.volumeSlider.Current = systems.GetMasterVolume()
	}
	if tui.speedButton != nil {
		if textWidget := tui.speedButton.Text(); textWidget != nil {
			textWidget.Label = speedLabel(systems.GetOrCreateSettings(tui.ecs).SpeedPreset)
		}
	}
}

func (tui *TitleUI) Update() {
	tui.UI.Update()
	if tui.volumeUnsaved && !pointerDown() {
		tui.volumeUnsaved = false
		systems.SaveCurrentSettings(systems.GetOrCreateSettings(tui.ecs))
	}
	// Widgets are only valid after the first update
	if !tui.initialized {
		tui.initialized = true
		tui.UpdateUI()
	}
}

func pointerDown() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || len(ebiten.AppendTouchIDs(nil)) > 0
}
