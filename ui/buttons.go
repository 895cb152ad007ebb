package ui

import (
	cfg "github.com/automoto/bugcrossing/config"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Button.Idle),
		Hover:    image.NewNineSliceColor(cfg.Button.Hover),
		Pressed:  image.NewNineSliceColor(cfg.Button.Pressed),
		Disabled: image.NewNineSliceColor(cfg.Button.Pressed),
	}
}

func newButton(label string, face *text.Face, layoutData interface{}, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Button.Width, cfg.Button.Height),
			widget.WidgetOpts.LayoutData(layoutData),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:    cfg.Button.Text,
			Hover:   cfg.Button.Text,
			Pressed: cfg.Button.Text,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}
