package components

import (
	"github.com/automoto/bugcrossing/core"
	"github.com/yohamta/donburi"
)

// SessionData is the singleton holding the running crossing.
type SessionData struct {
	State *core.State
}

var Session = donburi.NewComponentType[SessionData]()
