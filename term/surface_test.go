package term

import (
	"testing"

	"github.com/automoto/bugcrossing/assets/stage"
	"github.com/automoto/bugcrossing/core"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 24)
	return screen
}

func newTestSurface(t *testing.T) (tcell.SimulationScreen, *Surface) {
	screen := newTestScreen(t)
	return screen, NewSurface(screen, DefaultLayout(), stage.MustLoad("stage"))
}

func cellBackground(screen tcell.Screen, col, row int) tcell.Color {
	_, _, style, _ := screen.GetContent(col, row)
	_, bg, _ := style.Decompose()
	return bg
}

func TestDrawStageTerrain(t *testing.T) {
	screen, s := newTestSurface(t)
	s.DrawStage()

	assert.Equal(t, tcell.ColorNavy, cellBackground(screen, 0, 1))
	assert.Equal(t, tcell.ColorGray, cellBackground(screen, 20, 7))
	assert.Equal(t, tcell.ColorGreen, cellBackground(screen, 39, 18))
}

func TestDrawSpritePlayer(t *testing.T) {
	screen, s := newTestSurface(t)
	s.DrawStage()
	s.DrawSprite(core.SpritePlayer, 200, 390)

	r, _, style, _ := screen.GetContent(19, 17)
	assert.Equal(t, '☺', r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.ColorYellow, fg)
	assert.Equal(t, tcell.ColorGreen, bg)
}

func TestDrawSpriteEnemyCentered(t *testing.T) {
	screen, s := newTestSurface(t)
	s.DrawStage()
	s.DrawSprite(core.SpriteEnemy, 0, 55)

	var got []rune
	for col := 2; col < 6; col++ {
		r, _, _, _ := screen.GetContent(col, 5)
		got = append(got, r)
		assert.Equal(t, tcell.ColorGray, cellBackground(screen, col, 5))
	}
	assert.Equal(t, "<@@>", string(got))
}

func TestDrawSpriteClipsOffStage(t *testing.T) {
	screen, s := newTestSurface(t)
	s.DrawStage()
	// spawn position is left of the stage
	s.DrawSprite(core.SpriteEnemy, -90, 55)

	for col := 0; col < 8; col++ {
		r, _, _, _ := screen.GetContent(col, 5)
		assert.Equal(t, ' ', r, "col %d", col)
	}
}

func TestDrawSpriteUnknownID(t *testing.T) {
	screen, s := newTestSurface(t)
	s.DrawSprite("images/missing.png", 200, 390)

	r, _, _, _ := screen.GetContent(19, 17)
	assert.Equal(t, '?', r)
}

func TestDrawCentered(t *testing.T) {
	screen, s := newTestSurface(t)
	s.DrawCentered(0, core.TextWon, tcell.StyleDefault)

	// (40 - 8) / 2
	r, _, _, _ := screen.GetContent(16, 0)
	assert.Equal(t, 'Y', r)
	r, _, _, _ = screen.GetContent(23, 0)
	assert.Equal(t, '!', r)
}
