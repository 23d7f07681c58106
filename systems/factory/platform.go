package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/archetypes"
	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/components"
	cfg "github.com/mossworks/burrow/config"
	"github.com/mossworks/burrow/leveldata"
)

// CreatePlatform spawns a moving platform from a layout object. The
// platform moves using a *gween.Sequence of tweens yielding a vertical
// offset from its base position, up and back down.
func CreatePlatform(ecs *ecs.ECS, spawn leveldata.PlatformSpawn) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	travel := spawn.Range
	if travel == 0 {
		travel = cfg.Platform.Range
	}
	period := float32(spawn.Period)
	if period == 0 {
		period = cfg.Platform.Period
	}

	components.Position.SetValue(platform, components.PositionData{X: spawn.X, Y: spawn.Y})
	components.Platform.SetValue(platform, components.PlatformData{BaseX: spawn.X, BaseY: spawn.Y})

	shape := collision.NewRectangle(0, 0, spawn.W, spawn.H)
	col := collision.NewCollider(shape, 0, 0)
	col.SetPosition(spawn.X, spawn.Y)
	components.Collider.SetValue(platform, components.ColliderData{Collider: col})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, float32(-travel), period, ease.Linear),
		gween.New(float32(-travel), 0, period, ease.Linear),
	)
	components.Tween.Set(platform, tw)

	return platform
}
