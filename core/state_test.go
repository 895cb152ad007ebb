package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestState spawns every enemy on lane 0 at speed 230.
func newTestState() *State {
	return NewState(DefaultRules(), newFixedSource(0, 0.5))
}

func eventKinds(events []Event) []EventKind {
	kinds := make([]EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func TestNewState(t *testing.T) {
	s := newTestState()

	require.Len(t, s.Enemies, 4)
	assert.Equal(t, Vec{X: 200, Y: 390}, s.Player.Pos)
	assert.Equal(t, 3, s.Player.Lives)
	assert.False(t, s.GameOver())
	assert.Empty(t, s.Message())
	assert.Equal(t, []EventKind{EventLives}, eventKinds(s.DrainEvents()))
}

func TestStateUpdateMovesEnemies(t *testing.T) {
	s := newTestState()

	s.Update(0.1)

	for _, e := range s.Enemies {
		assert.InDelta(t, -67.0, e.Pos.X, 1e-9)
		assert.Equal(t, 55.0, e.Pos.Y)
	}
	assert.InDelta(t, 0.1, s.HUD.Clock(), 1e-12)
}

func TestStateCollisionCostsLife(t *testing.T) {
	s := newTestState()
	s.Enemies[2].Pos = s.Player.Pos

	s.Update(0)

	assert.Equal(t, 2, s.Player.Lives)
	assert.Equal(t, TextDied, s.Message())
	assert.Equal(t, s.Player.Start, s.Player.Pos)
}

func TestStateGameOverFreezesPlayer(t *testing.T) {
	s := newTestState()
	s.Player.Lives = 1
	s.Player.Pos = Vec{X: 99, Y: 224}
	s.Enemies[0].Pos = Vec{X: 99, Y: 221}

	s.Update(0)
	require.True(t, s.GameOver())
	assert.Equal(t, TextGameOver, s.Message())

	s.HandleInput(DirUp)
	assert.Equal(t, Vec{X: 99, Y: 224}, s.Player.Pos, "input is ignored")

	before := s.Enemies[1].Pos.X
	s.Update(0.5)
	assert.Greater(t, s.Enemies[1].Pos.X, before, "enemies keep moving")
	assert.Equal(t, 0, s.Player.Lives)
	assert.Equal(t, TextGameOver, s.Message())
}

func TestStateWinThroughInput(t *testing.T) {
	s := newTestState()
	s.DrainEvents()

	for i := 0; i < 5; i++ {
		s.HandleInput(DirUp)
	}
	require.True(t, s.Player.ReachedGoal())

	s.Update(0)

	assert.Equal(t, Vec{X: 200, Y: 390}, s.Player.Pos)
	assert.Equal(t, 3, s.Player.Lives)
	assert.Equal(t, TextWon, s.Message())

	kinds := eventKinds(s.DrainEvents())
	assert.Equal(t, []EventKind{
		EventStep, EventStep, EventStep, EventStep, EventStep,
		EventMessage, EventWin,
	}, kinds)
}

func TestStateRestart(t *testing.T) {
	s := newTestState()
	s.Player.Lives = 1
	s.Enemies[0].Pos = s.Player.Pos
	s.Update(0)
	s.Update(1)
	require.True(t, s.GameOver())

	s.Restart()

	assert.False(t, s.GameOver())
	assert.Equal(t, 3, s.Player.Lives)
	assert.Equal(t, Vec{X: 200, Y: 390}, s.Player.Pos)
	assert.Empty(t, s.Message())
	assert.Equal(t, 0.0, s.HUD.Clock())
	for _, e := range s.Enemies {
		assert.Equal(t, -90.0, e.Pos.X)
	}
	assert.Equal(t, []EventKind{EventLives, EventRestart}, eventKinds(s.DrainEvents()))
}

func TestStateRenderOrder(t *testing.T) {
	s := newTestState()
	surface := &recordingSurface{}

	s.Render(surface)

	require.Len(t, surface.calls, 5)
	for _, c := range surface.calls[:4] {
		assert.Equal(t, SpriteEnemy, c.id)
	}
	assert.Equal(t, drawCall{id: SpritePlayer, x: 200, y: 390}, surface.calls[4])
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		token string
		want  Direction
	}{
		{"left", DirLeft},
		{"right", DirRight},
		{"up", DirUp},
		{"down", DirDown},
		{"", DirNone},
		{"space", DirNone},
		{"Left", DirNone},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			d := ParseDirection(tt.token)
			assert.Equal(t, tt.want, d)
			if d != DirNone {
				assert.Equal(t, tt.token, d.String())
			}
		})
	}
}
