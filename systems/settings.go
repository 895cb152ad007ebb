package systems

import (
	"log"

	"github.com/automoto/bugcrossing/components"
	cfg "github.com/automoto/bugcrossing/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings toggles the hitbox overlay.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleHitboxes).JustPressed {
		settings.Hitboxes = !settings.Hitboxes
		log.Printf("Debug: hitboxes %v", settings.Hitboxes)
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the debug config.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{Hitboxes: cfg.Debug.Hitboxes})
	}
	return components.Settings.Get(entry)
}
