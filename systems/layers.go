package systems

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in ascending order.
const (
	LayerStage ecs.LayerID = iota
	LayerEntities
	LayerHUD
	LayerOverlay
)
