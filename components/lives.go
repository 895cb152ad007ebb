package components

import "github.com/yohamta/donburi"

// LivesData mirrors the last lives count published by the session. The HUD
// redraws its hearts from this every frame and pulses them after a change.
type LivesData struct {
	Count     int
	UpdatedAt float64 // session clock of the last change
}

var Lives = donburi.NewComponentType[LivesData]()
