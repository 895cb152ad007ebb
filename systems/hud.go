package systems

import (
	"github.com/automoto/bugcrossing/assets"
	"github.com/automoto/bugcrossing/components"
	cfg "github.com/automoto/bugcrossing/config"
	"github.com/automoto/bugcrossing/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders the lives strip below the stage. The hearts are rebuilt
// from the lives count on every frame.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Lives.First(ecs.World)
	if !ok {
		return
	}
	lives := components.Lives.Get(entry)

	pulse := 1.0
	if session, ok := GetSession(ecs); ok {
		pulse = heartPulse(session.State.HUD.Clock() - lives.UpdatedAt)
	}

	width := float32(screen.Bounds().Dx())
	top := float32(cfg.C.Height - cfg.HUD.Height)
	vector.FillRect(screen, 0, top, width, float32(cfg.HUD.Height), cfg.HUD.BackgroundColor, false)

	face := fonts.Regular.Get()
	labelBounds := text.BoundString(face, cfg.HUD.Label) //nolint:staticcheck // TODO: migrate to text/v2
	centerY := float64(top) + float64(cfg.HUD.Height)/2
	labelX := int(cfg.HUD.PaddingX)
	labelY := int(centerY) + labelBounds.Dy()/2
	text.Draw(screen, cfg.HUD.Label, face, labelX, labelY, cfg.HUD.LabelColor) //nolint:staticcheck // TODO: migrate to text/v2

	heart := assets.Sprite(assets.SpriteHeart)
	size := cfg.HUD.HeartSize * pulse
	scale := size / float64(heart.Bounds().Dx())
	heartX := cfg.HUD.PaddingX*2 + float64(labelBounds.Dx())

	for i := 0; i < lives.Count; i++ {
		// grow around the slot center so the row does not shift
		cx := heartX + float64(i)*(cfg.HUD.HeartSize+cfg.HUD.HeartGap) + cfg.HUD.HeartSize/2
		hudDrawOp.GeoM.Reset()
		hudDrawOp.GeoM.Scale(scale, scale)
		hudDrawOp.GeoM.Translate(cx-size/2, centerY-size/2)
		screen.DrawImage(heart, hudDrawOp)
	}
}

// heartPulse returns the heart scale elapsed seconds after the lives count
// changed. It shrinks linearly from PulseScale back to 1.
func heartPulse(elapsed float64) float64 {
	if elapsed < 0 || elapsed >= cfg.HUD.PulseSeconds {
		return 1
	}
	return 1 + (cfg.HUD.PulseScale-1)*(1-elapsed/cfg.HUD.PulseSeconds)
}
