package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MessageFadeData tracks the fade-in of the message box. A new message
// sequence number restarts the tween.
type MessageFadeData struct {
	Seq   uint64
	Tween *gween.Tween
	Alpha float32
}

var MessageFade = donburi.NewComponentType[MessageFadeData]()
