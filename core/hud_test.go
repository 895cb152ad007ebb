package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHUDMessageExpires(t *testing.T) {
	h := NewHUD()
	h.Show(TextWon, 2)

	h.Advance(1.5)
	assert.Equal(t, TextWon, h.Message())

	h.Advance(0.5)
	assert.Empty(t, h.Message())

	_, ok := h.Active()
	assert.False(t, ok)
}

func TestHUDEmptyRegion(t *testing.T) {
	h := NewHUD()

	_, ok := h.Active()
	assert.False(t, ok)
	assert.Empty(t, h.Message())
}

func TestHUDNewerMessageSurvivesOlderExpiry(t *testing.T) {
	h := NewHUD()
	h.Show(TextDied, 2)
	h.Advance(1.5)
	h.Show(TextWon, 2)

	// the first notice would have expired at 2.0
	h.Advance(1)
	assert.Equal(t, TextWon, h.Message())

	h.Advance(1)
	assert.Empty(t, h.Message())
}

func TestHUDPersistentMessage(t *testing.T) {
	h := NewHUD()
	h.Show(TextDied, 2)
	h.ShowPersistent(TextGameOver)

	h.Advance(1000)

	m, ok := h.Active()
	require.True(t, ok)
	assert.Equal(t, TextGameOver, m.Text)
	assert.True(t, m.Persistent)
}

func TestHUDSequenceAndExpiry(t *testing.T) {
	h := NewHUD()
	h.Show(TextWon, 2)
	first, _ := h.Active()

	h.Advance(0.25)
	h.Show(TextWon, 2)
	second, _ := h.Active()

	assert.Equal(t, uint64(1), first.Seq)
	assert.Equal(t, uint64(2), second.Seq)
	assert.Equal(t, 2.25, second.ExpiresAt)
}

func TestHUDDrain(t *testing.T) {
	h := NewHUD()
	h.Advance(3)
	h.Show(TextWon, 2)

	events := h.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, EventMessage, events[0].Kind)
	assert.Equal(t, TextWon, events[0].Text)
	assert.Equal(t, 3.0, events[0].At)

	assert.Empty(t, h.Drain())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "game-over", EventGameOver.String())
	assert.Equal(t, "restart", EventRestart.String())
	assert.Equal(t, "EventKind(42)", EventKind(42).String())
}
