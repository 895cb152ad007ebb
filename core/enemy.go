package core

// Enemy moves continuously along its lane and respawns at the left edge once
// it has crossed the stage.
type Enemy struct {
	EntityState
	rules *Rules
	src   Source
}

var _ Entity = (*Enemy)(nil)

// NewEnemy creates an enemy already moving in direction (xMove, yMove).
func NewEnemy(rules *Rules, src Source, x, y, speed, xMove, yMove float64, sprite SpriteID) *Enemy {
	return &Enemy{
		EntityState: newEntityState(x, y, speed, xMove, yMove, sprite),
		rules:       rules,
		src:         src,
	}
}

// SpawnEnemies creates the fixed enemy slots with random lanes and speeds.
func SpawnEnemies(rules *Rules, src Source) []*Enemy {
	enemies := make([]*Enemy, 0, rules.EnemyCount)
	for i := 0; i < rules.EnemyCount; i++ {
		lane := randomLane(src, rules)
		speed := RandomSpeed(src, rules)
		enemies = append(enemies, NewEnemy(rules, src,
			rules.EnemySpawnX, lane, speed,
			rules.EnemyDir.X, rules.EnemyDir.Y,
			rules.EnemySprite,
		))
	}
	return enemies
}

// Update advances the enemy by one tick.
func (e *Enemy) Update(dt float64) {
	e.Move(dt)
}

// Move wraps the enemy once it is past the right edge, otherwise moves it
// by dir*speed*dt. A wrap consumes the tick.
func (e *Enemy) Move(dt float64) {
	if e.Pos.X > e.rules.WrapX {
		e.Reset()
		return
	}
	e.Pos.X += e.Dir.X * e.Speed * dt
	e.Pos.Y += e.Dir.Y * e.Speed * dt
}

// Reset returns the enemy to the spawn x on a newly drawn lane.
func (e *Enemy) Reset() {
	e.Pos.X = e.Start.X
	e.Pos.Y = randomLane(e.src, e.rules)
	e.Dir = e.StartDir
}

// Box is the enemy's collision rectangle.
func (e *Enemy) Box() Box {
	return Box{X: e.Pos.X, Y: e.Pos.Y, W: e.rules.EnemyBox.X, H: e.rules.EnemyBox.Y}
}
