package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/archetypes"
	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/components"
	cfg "github.com/mossworks/burrow/config"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Position.SetValue(player, components.PositionData{X: x, Y: y})

	shape := collision.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	col := collision.NewCollider(shape, cfg.Player.CollisionOffX, cfg.Player.CollisionOffY)
	col.SetPosition(x, y)
	components.Collider.SetValue(player, components.ColliderData{Collider: col})

	return player
}
