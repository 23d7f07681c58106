package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/components"
	cfg "github.com/mossworks/burrow/config"
	"github.com/mossworks/burrow/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Position,
		components.Physics,
		components.Collider,
	)
	Crate = newArchetype(
		tags.Crate,
		components.Position,
		components.Collider,
	)
	Probe = newArchetype(
		tags.Probe,
		components.Position,
		components.Physics,
		components.Collider,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Position,
		components.Collider,
		components.Platform,
		components.Tween,
	)
	Room = newArchetype(
		components.Room,
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
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
