package archetypes

import (
	"github.com/automoto/bugcrossing/components"
	"github.com/automoto/bugcrossing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		tags.Session,
		components.Session,
		components.Lives,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Object,
		components.Hitbox,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return ecs.World.Entry(ecs.World.Create(append(a.components, cs...)...))
}
