package systems

import (
	"github.com/automoto/bugcrossing/assets"
	"github.com/automoto/bugcrossing/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// imageSurface draws core sprites onto an ebiten image.
type imageSurface struct {
	dst *ebiten.Image
	op  ebiten.DrawImageOptions
}

var _ core.Surface = (*imageSurface)(nil)

func (s *imageSurface) DrawSprite(id core.SpriteID, x, y float64) {
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(x, y)
	s.dst.DrawImage(assets.Sprite(id), &s.op)
}

var surface = &imageSurface{}

// DrawStage renders the terrain background.
func DrawStage(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.DrawImage(assets.Background(), nil)
}

// DrawEntities renders enemies then the player.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	session, ok := GetSession(ecs)
	if !ok {
		return
	}
	surface.dst = screen
	session.State.Render(surface)
}
