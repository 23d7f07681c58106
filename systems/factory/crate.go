package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/archetypes"
	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/components"
	cfg "github.com/mossworks/burrow/config"
)

func CreateCrate(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	crate := archetypes.Crate.Spawn(ecs)

	components.Position.SetValue(crate, components.PositionData{X: x, Y: y})

	shape := collision.NewRectangle(0, 0, cfg.Crate.Size, cfg.Crate.Size)
	col := collision.NewCollider(shape, 0, 0)
	col.SetPosition(x, y)
	components.Collider.SetValue(crate, components.ColliderData{Collider: col})

	return crate
}
