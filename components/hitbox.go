package components

import "github.com/yohamta/donburi"

// HitboxSlotPlayer marks the player's hitbox; enemies use their index.
const HitboxSlotPlayer = -1

// HitboxData links a debug hitbox object to an entity in the session.
type HitboxData struct {
	Slot int
}

var Hitbox = donburi.NewComponentType[HitboxData]()
