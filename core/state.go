package core

// State owns everything in a crossing session. Frontends drive it with
// Update and HandleInput and draw it with Render.
type State struct {
	Rules   Rules
	Player  *Player
	Enemies []*Enemy
	HUD     *HUD

	src Source
}

// NewState spawns the enemies and the player and publishes the starting lives.
func NewState(rules Rules, src Source) *State {
	s := &State{Rules: rules, src: src}
	s.init()
	return s
}

func (s *State) init() {
	s.HUD = NewHUD()
	s.Enemies = SpawnEnemies(&s.Rules, s.src)
	s.Player = NewPlayer(&s.Rules, s.HUD)
	s.Player.DisplayLives()
}

// Update advances the session by dt seconds. Once the game is over enemies
// keep moving but the player is frozen.
func (s *State) Update(dt float64) {
	s.HUD.Advance(dt)
	for _, e := range s.Enemies {
		e.Update(dt)
	}
	if s.GameOver() {
		return
	}
	s.Player.Update(dt, s.Enemies)
}

// HandleInput applies a direction immediately. Ignored after game over.
func (s *State) HandleInput(d Direction) {
	if s.GameOver() {
		return
	}
	s.Player.HandleInput(d)
}

// Render draws enemies first, then the player on top.
func (s *State) Render(surface Surface) {
	for _, e := range s.Entities() {
		e.Render(surface)
	}
}

// Entities returns every entity in draw order.
func (s *State) Entities() []Entity {
	entities := make([]Entity, 0, len(s.Enemies)+1)
	for _, e := range s.Enemies {
		entities = append(entities, e)
	}
	return append(entities, s.Player)
}

// GameOver reports whether the player has run out of lives.
func (s *State) GameOver() bool {
	return s.Player.Lives <= 0
}

// Message returns the visible message text.
func (s *State) Message() string {
	return s.HUD.Message()
}

// Restart throws away the session and starts a fresh one.
func (s *State) Restart() {
	s.init()
	s.HUD.emit(Event{Kind: EventRestart, Lives: s.Player.Lives})
}

// DrainEvents returns and clears the events recorded since the last call.
func (s *State) DrainEvents() []Event {
	return s.HUD.Drain()
}
