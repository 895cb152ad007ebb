package core

// Player steps one grid cell per input and tracks lives.
type Player struct {
	EntityState
	Lives int

	rules *Rules
	hud   *HUD
}

var _ Entity = (*Player)(nil)

// NewPlayer places a player on the start cell with full lives. Notices and
// lives changes are published through hud.
func NewPlayer(rules *Rules, hud *HUD) *Player {
	return &Player{
		EntityState: newEntityState(rules.PlayerStart.X, rules.PlayerStart.Y, 0, 0, 0, rules.PlayerSprite),
		Lives:       rules.StartingLives,
		rules:       rules,
		hud:         hud,
	}
}

// Move jumps one cell along the current direction. dt is ignored.
func (p *Player) Move(dt float64) {
	p.Pos.X += p.Dir.X * p.rules.CellWidth
	p.Pos.Y += p.Dir.Y * p.rules.CellHeight
}

// Reset puts the player back on the start cell with the start direction.
func (p *Player) Reset() {
	p.restart()
}

// Update runs the goal and collision checks. Both run every tick; the player
// itself only moves from HandleInput.
func (p *Player) Update(dt float64, enemies []*Enemy) {
	if p.ReachedGoal() {
		p.Win()
	}
	if p.Collision(enemies) {
		p.Die()
	}
}

// HandleInput performs one discrete step and clamps to the stage.
func (p *Player) HandleInput(d Direction) {
	// drop the previous key's axis so steps never go diagonal
	p.Dir = p.StartDir

	switch d {
	case DirLeft:
		p.Dir.X = -1
	case DirRight:
		p.Dir.X = 1
	case DirUp:
		p.Dir.Y = -1
	case DirDown:
		p.Dir.Y = 1
	}
	p.Move(0)
	p.clamp()

	if d != DirNone {
		p.hud.emit(Event{Kind: EventStep, Text: d.String()})
	}
}

func (p *Player) clamp() {
	r := p.rules
	if p.Pos.X < r.MinX {
		p.Pos.X = r.MinX
	}
	if p.Pos.X > r.MaxX {
		p.Pos.X = r.MaxX
	}
	if p.Pos.Y < r.MinY {
		p.Pos.Y = r.MinY
	}
	if p.Pos.Y > r.MaxY {
		p.Pos.Y = r.MaxY
	}
}

// ReachedGoal reports whether the player is on the top row.
func (p *Player) ReachedGoal() bool {
	return p.Pos.Y < p.rules.GoalY
}

// Collision reports whether any enemy overlaps the player.
func (p *Player) Collision(enemies []*Enemy) bool {
	return Collision(p, enemies)
}

// Box is the player's collision rectangle.
func (p *Player) Box() Box {
	return Box{X: p.Pos.X, Y: p.Pos.Y, W: p.rules.PlayerBox.X, H: p.rules.PlayerBox.Y}
}

// Win shows a timed notice and sends the player back to the start.
// Enemies and lives are untouched.
func (p *Player) Win() {
	p.hud.Show(TextWon, p.rules.MessageTTL)
	p.hud.emit(Event{Kind: EventWin, Lives: p.Lives})
	p.Reset()
}

// Die costs a life. With lives to spare the player respawns; on the last life
// the game-over notice stays up and the player is left where it was hit.
func (p *Player) Die() {
	if p.Lives <= 0 {
		return
	}

	p.hud.Show(TextDied, p.rules.MessageTTL)
	p.Lives--
	p.DisplayLives()

	if p.Lives > 0 {
		p.hud.emit(Event{Kind: EventDeath, Lives: p.Lives})
		p.Reset()
		return
	}

	p.hud.ShowPersistent(TextGameOver)
	p.hud.emit(Event{Kind: EventGameOver})
}

// DisplayLives publishes the current lives count.
func (p *Player) DisplayLives() {
	p.hud.emit(Event{Kind: EventLives, Lives: p.Lives})
}
