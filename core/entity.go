// Package core is the crossing simulation: entities, collision, lives and
// timed messages. It has no rendering or input dependencies; frontends feed it
// delta-time ticks and directions and give it a Surface to draw on.
package core

// SpriteID names a drawable resource, e.g. "images/enemy-bug.png".
type SpriteID string

// Vec is a 2D vector.
type Vec struct {
	X, Y float64
}

// Surface draws a sprite with its top-left corner at (x, y).
type Surface interface {
	DrawSprite(id SpriteID, x, y float64)
}

// Entity is the per-variant behaviour shared by players and enemies.
type Entity interface {
	Move(dt float64)
	Reset()
	Render(s Surface)
}

// EntityState is the position/velocity/sprite state embedded in every entity.
type EntityState struct {
	Pos      Vec
	Start    Vec
	Dir      Vec
	StartDir Vec
	Speed    float64
	Sprite   SpriteID
}

func newEntityState(x, y, speed, xMove, yMove float64, sprite SpriteID) EntityState {
	return EntityState{
		Pos:      Vec{X: x, Y: y},
		Start:    Vec{X: x, Y: y},
		Dir:      Vec{X: xMove, Y: yMove},
		StartDir: Vec{X: xMove, Y: yMove},
		Speed:    speed,
		Sprite:   sprite,
	}
}

// Render draws the sprite at the current position.
func (e *EntityState) Render(s Surface) {
	s.DrawSprite(e.Sprite, e.Pos.X, e.Pos.Y)
}

func (e *EntityState) restart() {
	e.Pos = e.Start
	e.Dir = e.StartDir
}
