package systems

import (
	"log"

	"github.com/automoto/bugcrossing/archetypes"
	"github.com/automoto/bugcrossing/components"
	cfg "github.com/automoto/bugcrossing/config"
	"github.com/automoto/bugcrossing/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Movement actions in the order they are applied when several keys are
// released on the same frame.
var moveActions = []struct {
	action cfg.ActionID
	dir    core.Direction
}{
	{cfg.ActionMoveLeft, core.DirLeft},
	{cfg.ActionMoveRight, core.DirRight},
	{cfg.ActionMoveUp, core.DirUp},
	{cfg.ActionMoveDown, core.DirDown},
}

// CreateSession stores state as the world's session singleton.
func CreateSession(ecs *ecs.ECS, state *core.State) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{State: state})
	components.Lives.SetValue(entry, components.LivesData{Count: state.Player.Lives})
	return entry
}

// GetSession returns the session singleton.
func GetSession(ecs *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

// UpdateSession feeds released movement keys to the session and advances it
// by one tick.
func UpdateSession(ecs *ecs.ECS) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	state := components.Session.Get(entry).State
	input := getOrCreateInput(ecs)

	for _, m := range moveActions {
		if GetAction(input, m.action).JustReleased {
			state.HandleInput(m.dir)
		}
	}

	state.Update(1 / float64(ebiten.TPS()))

	applyEvents(ecs, entry, state.DrainEvents())
}

// applyEvents mirrors lives changes onto the entry, queues event sounds and
// logs session milestones.
func applyEvents(ecs *ecs.ECS, entry *donburi.Entry, events []core.Event) {
	for _, ev := range events {
		PlaySFX(ecs, cfg.EventSounds[ev.Kind])
		switch ev.Kind {
		case core.EventLives:
			components.Lives.SetValue(entry, components.LivesData{Count: ev.Lives, UpdatedAt: ev.At})
		case core.EventWin, core.EventDeath, core.EventGameOver, core.EventRestart:
			log.Printf("Session: %s at %.2fs (lives %d)", ev.Kind, ev.At, ev.Lives)
		}
	}
}
