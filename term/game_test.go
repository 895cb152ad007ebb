package term

import (
	"math/rand"
	"testing"

	"github.com/automoto/bugcrossing/assets/stage"
	"github.com/automoto/bugcrossing/core"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSounder struct {
	played []core.EventKind
}

func (r *recordingSounder) Play(kind core.EventKind) {
	r.played = append(r.played, kind)
}

func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen, *recordingSounder) {
	t.Helper()
	screen := newTestScreen(t)
	state := core.NewState(core.DefaultRules(), rand.New(rand.NewSource(1)))
	// park the enemies far from the player
	for _, e := range state.Enemies {
		e.Pos.X = -1000
	}
	sound := &recordingSounder{}
	return NewGame(screen, state, stage.MustLoad("stage"), sound), screen, sound
}

func press(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// killPlayer drops an enemy onto the player and runs the collision check.
func killPlayer(g *Game) {
	e := g.State().Enemies[0]
	e.Pos = g.State().Player.Pos
	g.Tick(0)
}

func TestNewGameReadsStartingLives(t *testing.T) {
	g, _, sound := newTestGame(t)

	assert.Equal(t, 3, g.Lives())
	assert.Equal(t, []core.EventKind{core.EventLives}, sound.played)
}

func TestHandleEventMovesPlayer(t *testing.T) {
	g, _, sound := newTestGame(t)

	assert.True(t, g.HandleEvent(press('k')))
	assert.Equal(t, 390-83.0, g.State().Player.Pos.Y)
	assert.True(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.Equal(t, 200-101.0, g.State().Player.Pos.X)
	assert.Contains(t, sound.played, core.EventStep)
}

func TestHandleEventQuit(t *testing.T) {
	g, _, _ := newTestGame(t)

	assert.False(t, g.HandleEvent(press('q')))
	assert.False(t, g.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g, _, _ := newTestGame(t)

	g.HandleEvent(press('k'))
	g.HandleEvent(press('r'))
	assert.Equal(t, 390-83.0, g.State().Player.Pos.Y, "restart ignored while playing")

	g.State().Player.Lives = 1
	killPlayer(g)
	require.True(t, g.State().GameOver())
	assert.Equal(t, 0, g.Lives())

	g.HandleEvent(press('r'))
	assert.False(t, g.State().GameOver())
	assert.Equal(t, 3, g.Lives())
	assert.Equal(t, 390.0, g.State().Player.Pos.Y)
}

func TestTickPlaysEventSounds(t *testing.T) {
	g, _, sound := newTestGame(t)
	sound.played = nil

	killPlayer(g)
	assert.Contains(t, sound.played, core.EventDeath)
	assert.Equal(t, 2, g.Lives())

	g.State().Player.Pos.Y = 0
	g.Tick(0)
	assert.Contains(t, sound.played, core.EventWin)
}

func TestDrawShowsMessageAndLives(t *testing.T) {
	g, screen, _ := newTestGame(t)

	killPlayer(g)
	g.Draw()

	// "YOU DIED!" centered over 40 columns
	r, _, _, _ := screen.GetContent(15, 0)
	assert.Equal(t, 'Y', r)

	row := DefaultLayout().HUDRow()
	var label []rune
	for col := 0; col < len(hudLabel); col++ {
		r, _, _, _ := screen.GetContent(col, row)
		label = append(label, r)
	}
	assert.Equal(t, hudLabel, string(label))

	r, _, _, _ = screen.GetContent(len(hudLabel)+1, row)
	assert.Equal(t, '♥', r)
	r, _, _, _ = screen.GetContent(len(hudLabel)+3, row)
	assert.Equal(t, '♥', r)
	r, _, _, _ = screen.GetContent(len(hudLabel)+5, row)
	assert.Equal(t, ' ', r)
}

func TestDrawGameOverHint(t *testing.T) {
	g, screen, _ := newTestGame(t)

	g.State().Player.Lives = 1
	killPlayer(g)
	g.Draw()

	row := DefaultLayout().HUDRow() + 1
	col := (DefaultLayout().Width() - len(quitHint)) / 2
	r, _, _, _ := screen.GetContent(col, row)
	assert.Equal(t, 'r', r)
}
