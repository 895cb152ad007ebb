package ui

import (
	cfg "github.com/automoto/bugcrossing/config"
	"github.com/automoto/bugcrossing/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TitleUI is the instruction page shown before the first crossing.
type TitleUI struct {
	UI *ebitenui.UI

	OnStart func()

	headingFace text.Face
	normalFace  text.Face
	buttonFace  text.Face
}

// NewTitleUI builds the title page; onStart runs when Start is clicked.
func NewTitleUI(onStart func()) *TitleUI {
	tui := &TitleUI{
		OnStart:     onStart,
		headingFace: fonts.UIFace(40),
		normalFace:  fonts.UIFace(16),
		buttonFace:  fonts.UIFace(cfg.Button.FontSize),
	}
	tui.buildUI()
	return tui
}

func (tui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Title.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	centered := widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Title.Heading, &tui.headingFace, &widget.LabelColor{
			Idle: cfg.Title.HeadingColor,
		}),
	))

	for _, line := range cfg.Title.Instructions {
		content.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &tui.normalFace, &widget.LabelColor{
				Idle: cfg.Title.TextColor,
			}),
		))
	}

	content.AddChild(newButton(cfg.Title.ButtonLabel, &tui.buttonFace, centered, func() {
		tui.OnStart()
	}))

	rootContainer.AddChild(content)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TitleUI) Update() {
	tui.UI.Update()
}
