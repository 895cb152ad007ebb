package assets

import (
	"image/color"
	"log"

	"github.com/automoto/bugcrossing/assets/stage"
	"github.com/automoto/bugcrossing/config"
	"github.com/automoto/bugcrossing/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteHeart is the lives icon drawn in the HUD strip.
const SpriteHeart core.SpriteID = "images/Heart.png"

// Sprite art shares the classic 101x171 canvas.
const (
	spriteWidth  = 101
	spriteHeight = 171
)

type spriteGen struct {
	w, h int
	draw func(img *ebiten.Image)
}

var generators = map[core.SpriteID]spriteGen{
	core.SpriteEnemy:        {spriteWidth, spriteHeight, drawBug},
	core.SpritePlayer:       {spriteWidth, spriteHeight, drawBoy},
	SpriteHeart:             {32, 32, drawHeart},
	TileSprite(stage.Water): {spriteWidth, spriteHeight, drawBlock(color.RGBA{R: 70, G: 130, B: 220, A: 255})},
	TileSprite(stage.Stone): {spriteWidth, spriteHeight, drawBlock(color.RGBA{R: 150, G: 150, B: 150, A: 255})},
	TileSprite(stage.Grass): {spriteWidth, spriteHeight, drawBlock(color.RGBA{R: 90, G: 190, B: 80, A: 255})},
}

var sprites = map[core.SpriteID]*ebiten.Image{}

// TileSprite returns the sprite id for a terrain kind.
func TileSprite(kind stage.Kind) core.SpriteID {
	return core.SpriteID("images/" + string(kind) + "-block.png")
}

// Sprite returns the image for id, generating it on first use. Unknown ids
// get a magenta placeholder so lookups never fail.
func Sprite(id core.SpriteID) *ebiten.Image {
	if img, ok := sprites[id]; ok {
		return img
	}

	gen, ok := generators[id]
	if !ok {
		log.Printf("Warning: no sprite for %q, using placeholder", id)
		gen = spriteGen{spriteWidth, spriteHeight, drawPlaceholder}
	}
	img := ebiten.NewImage(gen.w, gen.h)
	gen.draw(img)
	sprites[id] = img
	return img
}

// PreloadSprites generates every known sprite up front.
func PreloadSprites() {
	for id := range generators {
		Sprite(id)
	}
}

func drawBlock(top color.RGBA) func(*ebiten.Image) {
	side := color.RGBA{R: top.R / 2, G: top.G / 2, B: top.B / 2, A: 255}
	return func(img *ebiten.Image) {
		vector.FillRect(img, 0, 50, spriteWidth, 86, top, false)
		vector.FillRect(img, 0, 136, spriteWidth, 35, side, false)
	}
}

func drawBug(img *ebiten.Image) {
	shell := color.RGBA{R: 200, G: 30, B: 30, A: 255}
	dark := color.RGBA{R: 60, G: 10, B: 10, A: 255}

	// legs
	for _, y := range []float32{96, 110, 124} {
		vector.FillRect(img, 14, y, 66, 3, dark, false)
	}
	vector.DrawFilledCircle(img, 44, 110, 30, shell, true)
	vector.FillRect(img, 43, 82, 2, 56, dark, false)
	// head
	vector.DrawFilledCircle(img, 80, 110, 14, dark, true)
	vector.DrawFilledCircle(img, 85, 104, 4, color.White, true)
	vector.DrawFilledCircle(img, 85, 116, 4, color.White, true)
}

func drawBoy(img *ebiten.Image) {
	skin := color.RGBA{R: 240, G: 200, B: 160, A: 255}
	shirt := color.RGBA{R: 40, G: 110, B: 200, A: 255}
	hair := color.RGBA{R: 90, G: 50, B: 20, A: 255}

	vector.FillRect(img, 32, 100, 37, 36, shirt, false)
	vector.FillRect(img, 36, 136, 11, 14, hair, false)
	vector.FillRect(img, 54, 136, 11, 14, hair, false)
	vector.DrawFilledCircle(img, 50, 82, 20, skin, true)
	vector.FillRect(img, 30, 60, 41, 10, hair, false)
	vector.DrawFilledCircle(img, 43, 84, 3, color.Black, true)
	vector.DrawFilledCircle(img, 57, 84, 3, color.Black, true)
}

func drawHeart(img *ebiten.Image) {
	red := color.RGBA{R: 220, G: 30, B: 60, A: 255}
	vector.DrawFilledCircle(img, 9, 10, 8, red, true)
	vector.DrawFilledCircle(img, 23, 10, 8, red, true)
	// rows narrowing toward the point
	for i := 0; i < 15; i++ {
		vector.FillRect(img, float32(1+i), float32(12+i), float32(30-2*i), 1, red, false)
	}
}

func drawPlaceholder(img *ebiten.Image) {
	img.Fill(config.Magenta)
}
