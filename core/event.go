package core

import "fmt"

type EventKind int

const (
	EventMessage EventKind = iota
	EventLives
	EventStep
	EventWin
	EventDeath
	EventGameOver
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventMessage:
		return "message"
	case EventLives:
		return "lives"
	case EventStep:
		return "step"
	case EventWin:
		return "win"
	case EventDeath:
		return "death"
	case EventGameOver:
		return "game-over"
	case EventRestart:
		return "restart"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a UI-facing notification recorded by the simulation. At is the
// session clock in seconds.
type Event struct {
	Kind  EventKind
	Text  string
	Lives int
	At    float64
}
