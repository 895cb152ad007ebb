package term

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/automoto/bugcrossing/assets/stage"
	"github.com/automoto/bugcrossing/core"
	"github.com/gdamore/tcell/v2"
)

const (
	hudLabel = "Lives:"
	heart    = "♥"
	quitHint = "r restart  q quit"
)

var (
	messageStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	hudStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	heartStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	hintStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// Game drives a crossing session from terminal key presses.
type Game struct {
	screen  tcell.Screen
	state   *core.State
	surface *Surface
	layout  Layout
	sound   Sounder
	lives   int
}

// NewGame wires state to screen. A nil sound plays nothing.
func NewGame(screen tcell.Screen, state *core.State, terrain stage.Layout, sound Sounder) *Game {
	if sound == nil {
		sound = Silent{}
	}
	layout := DefaultLayout()
	g := &Game{
		screen:  screen,
		state:   state,
		surface: NewSurface(screen, layout, terrain),
		layout:  layout,
		sound:   sound,
	}
	g.drain()
	return g
}

// State returns the running session.
func (g *Game) State() *core.State {
	return g.state
}

// Lives is the count last published by the session.
func (g *Game) Lives() int {
	return g.lives
}

// HandleEvent applies a terminal event and reports whether the game should
// keep running. Terminals only deliver presses, so moves act on press.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, dir := MapKey(ev)
		switch cmd {
		case CommandQuit:
			return false
		case CommandMove:
			g.state.HandleInput(dir)
		case CommandRestart:
			if g.state.GameOver() {
				g.state.Restart()
			}
		}
		g.drain()
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// Tick advances the session by dt seconds.
func (g *Game) Tick(dt float64) {
	g.state.Update(dt)
	g.drain()
}

func (g *Game) drain() {
	for _, ev := range g.state.DrainEvents() {
		switch ev.Kind {
		case core.EventLives:
			g.lives = ev.Lives
		case core.EventWin, core.EventDeath, core.EventGameOver, core.EventRestart:
			log.Printf("Session: %s at %.2fs (lives %d)", ev.Kind, ev.At, ev.Lives)
		}
		g.sound.Play(ev.Kind)
	}
}

// Draw renders the message line, the stage and the lives line.
func (g *Game) Draw() {
	g.screen.Clear()

	if msg := g.state.Message(); msg != "" {
		g.surface.DrawCentered(0, msg, messageStyle)
	}

	g.surface.DrawStage()
	g.state.Render(g.surface)

	row := g.layout.HUDRow()
	g.surface.DrawText(0, row, hudLabel, hudStyle)
	hearts := strings.TrimSpace(strings.Repeat(heart+" ", max(g.lives, 0)))
	g.surface.DrawText(len(hudLabel)+1, row, hearts, heartStyle)

	if g.state.GameOver() {
		g.surface.DrawCentered(row+1, quitHint, hintStyle)
	}

	g.screen.Show()
}

// Run polls input and ticks the session every interval until the player quits.
func (g *Game) Run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	dt := interval.Seconds()
	g.Draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.Tick(dt)
			g.Draw()
		}
	}
}

// String summarises the session for logs.
func (g *Game) String() string {
	return fmt.Sprintf("lives=%d over=%t message=%q", g.lives, g.state.GameOver(), g.state.Message())
}
