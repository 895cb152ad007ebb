package components

import "github.com/yohamta/donburi"

// GameOverData is set when the player asks for a new session from the
// game over overlay.
type GameOverData struct {
	RestartRequested bool
}

// GameOver is the component type for game over overlay state
var GameOver = donburi.NewComponentType[GameOverData]()
