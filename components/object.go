package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the broad-phase grid used by the hitbox overlay.
var Space = donburi.NewComponentType[resolv.Space]()
