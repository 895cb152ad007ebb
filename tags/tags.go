package tags

import "github.com/yohamta/donburi"

var (
	Session = donburi.NewTag().SetName("Session")
	Hitbox  = donburi.NewTag().SetName("Hitbox")
)

// Resolv tags for the hitbox overlay
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)
