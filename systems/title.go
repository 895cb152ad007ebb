package systems

import (
	cfg "github.com/automoto/bugcrossing/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenuSelect creates a system that calls onSelect when the menu
// select action is released.
func NewUpdateMenuSelect(onSelect func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustReleased {
			PlaySFX(e, cfg.SoundMenuSelect)
			onSelect()
		}
	}
}
