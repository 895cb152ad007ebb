package assets

import (
	"github.com/automoto/bugcrossing/assets/stage"
	"github.com/automoto/bugcrossing/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var background *ebiten.Image

// Background returns the prerendered stage terrain, building it from the
// embedded map on first use.
func Background() *ebiten.Image {
	if background == nil {
		background = RenderStage(stage.MustLoad(config.Stage.LayerName))
	}
	return background
}

// RenderStage draws every cell of layout top to bottom so the taller tile art
// overlaps the row below.
func RenderStage(layout stage.Layout) *ebiten.Image {
	height := (layout.Rows-1)*layout.TileHeight + config.Stage.TileImageHeight
	img := ebiten.NewImage(layout.Columns*layout.TileWidth, height)

	op := &ebiten.DrawImageOptions{}
	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Columns; col++ {
			kind := layout.At(col, row)
			if kind == stage.Empty {
				continue
			}
			op.GeoM.Reset()
			op.GeoM.Translate(float64(col*layout.TileWidth), float64(row*layout.TileHeight))
			img.DrawImage(Sprite(TileSprite(kind)), op)
		}
	}
	return img
}
