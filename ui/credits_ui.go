package ui

import (
	cfg "github.com/automoto/lanerunner/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CreditsUI lists the credit lines with a Back button
type CreditsUI struct {
	UI     *ebitenui.UI
	OnBack func()

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewCreditsUI(lines []string, onBack func()) *CreditsUI {
	cui := &CreditsUI{OnBack: onBack}
	cui.titleFace, cui.normalFace, cui.smallFace = loadFaces()

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
		widget.LabelOpts.Text("CREDITS", &cui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))
	for _, line := range lines {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &cui.normalFace, &widget.LabelColor{
				Idle: cfg.Menu.TextColor,
			}),
		))
	}
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Esc: back", &cui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColor,
		}),
	))
	contentContainer.AddChild(newButton("Back", 150, 22, &cui.normalFace, func() {
		cui.OnBack()
	}))

	rootContainer.AddChild(contentContainer)
	cui.UI = &ebitenui.UI{Container: rootContainer}
	return cui
}
