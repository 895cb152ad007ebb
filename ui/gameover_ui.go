package ui

import (
	cfg "github.com/automoto/bugcrossing/config"
	"github.com/automoto/bugcrossing/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameOverUI holds the Restart button drawn over the game over overlay.
type GameOverUI struct {
	UI *ebitenui.UI

	OnRestart func()

	buttonFace text.Face
}

// NewGameOverUI builds the overlay; onRestart runs when Restart is clicked.
func NewGameOverUI(onRestart func()) *GameOverUI {
	gui := &GameOverUI{
		OnRestart:  onRestart,
		buttonFace: fonts.UIFace(cfg.Button.FontSize),
	}
	gui.buildUI()
	return gui
}

func (gui *GameOverUI) buildUI() {
	// Transparent root so the stage and overlay stay visible
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Push the button below the overlay hint
	padding := widget.Insets{Top: cfg.GameOver.ButtonY}
	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	column.AddChild(newButton("Restart", &gui.buttonFace, widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	}, func() {
		gui.OnRestart()
	}))
	rootContainer.AddChild(column)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (gui *GameOverUI) Update() {
	gui.UI.Update()
}
