package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/components"
	"github.com/mossworks/burrow/tags"
)

// UpdateReset clears last frame's collision flags on every live
// collider and every compiled mask rectangle. Runs once per tick, before
// any system that moves entities or queries overlaps.
func UpdateReset(ecs *ecs.ECS) {
	var masks *collision.MaskSet
	if room := activeRoom(ecs.World); room != nil {
		masks = room.Masks
	}
	collision.ResetFrame(collectColliders(ecs.World), masks)
}

// UpdateCollisions runs the frame's entity-vs-entity and cursor queries
// after all movement has settled. Hazard and sensor tile responses live
// here too; solid tiles are handled during movement in UpdatePhysics.
func UpdateCollisions(ecs *ecs.ECS) {
	entries := collectColliderEntries(ecs.World)
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			a := components.Collider.Get(entries[i]).Collider
			b := components.Collider.Get(entries[j]).Collider
			collision.TestEntities(a, b)
		}
	}

	input := getOrCreateInput(ecs)
	for _, e := range entries {
		collision.TestPoint(components.Collider.Get(e).Collider, input.CursorX, input.CursorY)
	}

	room := activeRoom(ecs.World)
	if room == nil || room.Registry == nil {
		return
	}
	hazard, hasHazard := room.Registry.Code(tags.BehaviorHazard)
	sensor, hasSensor := room.Registry.Code(tags.BehaviorSensor)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		col := components.Collider.Get(e).Collider
		if hasHazard && len(collision.TestAgainstBehavior(col, hazard, room.Masks)) > 0 {
			respawnPlayer(ecs)
			return
		}
		if hasSensor {
			// Run for the flag side effects: the overlay highlights
			// sensor rectangles the player is standing in.
			collision.TestAgainstBehavior(col, sensor, room.Masks)
		}
	})
}

func collectColliders(w donburi.World) []*collision.Collider {
	var out []*collision.Collider
	components.Collider.Each(w, func(e *donburi.Entry) {
		out = append(out, components.Collider.Get(e).Collider)
	})
	return out
}

func collectColliderEntries(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	components.Collider.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func activeRoom(w donburi.World) *components.RoomData {
	entry, ok := components.Room.First(w)
	if !ok {
		return nil
	}
	return components.Room.Get(entry)
}
