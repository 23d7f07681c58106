package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/archetypes"
	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/components"
	cfg "github.com/mossworks/burrow/config"
)

// CreateProbe spawns the roaming circle probe. x and y are the circle
// center; the collider offset keeps the entity origin at the center too,
// so SetPosition stays a straight pass-through.
func CreateProbe(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	probe := archetypes.Probe.Spawn(ecs)

	components.Position.SetValue(probe, components.PositionData{X: x, Y: y})
	components.Physics.SetValue(probe, components.PhysicsData{SpeedX: cfg.Probe.Speed})

	shape := collision.NewCircle(0, 0, cfg.Probe.Radius)
	col := collision.NewCollider(shape, 0, 0)
	col.SetPosition(x, y)
	components.Collider.SetValue(probe, components.ColliderData{Collider: col})

	return probe
}
