package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/components"
	"github.com/mossworks/burrow/tags"
)

// One simulation tick at the default ebitengine tick rate.
const tickDelta = float32(1.0 / 60.0)

// UpdatePlatforms advances every platform's tween and re-derives its
// collider position. Runs after UpdateReset and before UpdatePhysics so
// the player clamps against the platform's position for this frame.
func UpdatePlatforms(ecs *ecs.ECS) {
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		offset, _, done := tw.Update(tickDelta)
		if done {
			tw.Reset()
		}

		base := components.Platform.Get(e)
		pos := components.Position.Get(e)
		pos.X = base.BaseX
		pos.Y = base.BaseY + float64(offset)

		components.Collider.Get(e).Collider.SetPosition(pos.X, pos.Y)
	})
}
