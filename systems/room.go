package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/components"
	"github.com/mossworks/burrow/systems/factory"
	"github.com/mossworks/burrow/tags"
)

// UpdateRoom cycles to the next room when requested.
func UpdateRoom(ecs *ecs.ECS) {
	if !getOrCreateInput(ecs).CycleRoom {
		return
	}
	room := activeRoom(ecs.World)
	if room == nil {
		return
	}
	ActivateRoom(ecs, room.Index+1)
}

// ActivateRoom makes the layout at index (wrapping) the live room:
// compiles its masks, despawns the previous room's entities and spawns
// the new room's platforms, crates and probe, and moves the player to
// the spawn point. The mask set is replaced wholesale so every query
// after activation sees one consistent compilation.
func ActivateRoom(ecs *ecs.ECS, index int) {
	room := activeRoom(ecs.World)
	if room == nil || len(room.Layouts) == 0 {
		return
	}
	index = ((index % len(room.Layouts)) + len(room.Layouts)) % len(room.Layouts)
	layout := room.Layouts[index]

	masks, err := collision.Compile(layout.Grid, layout.CellW, layout.CellH)
	if err != nil {
		logger.Error("compile room masks", "room", layout.Name, "err", err)
		return
	}
	room.Index = index
	room.Layout = layout
	room.Masks = masks
	logger.Info("room activated", "room", layout.Name, "masks", masks.Len())

	despawnRoomEntities(ecs)
	for _, p := range layout.Platforms {
		factory.CreatePlatform(ecs, p)
	}

	sx, sy := spawnPoint(room)
	factory.CreateCrate(ecs, sx+3*layout.CellW, sy)
	factory.CreateProbe(ecs, float64(layout.Width)/2, float64(layout.Height)/2)

	if player := firstPlayer(ecs.World); player != nil {
		placePlayer(player, sx, sy)
	} else {
		factory.CreatePlayer(ecs, sx, sy)
	}
}

func respawnPlayer(ecs *ecs.ECS) {
	room := activeRoom(ecs.World)
	if room == nil || room.Layout == nil {
		return
	}
	sx, sy := spawnPoint(room)
	if player := firstPlayer(ecs.World); player != nil {
		placePlayer(player, sx, sy)
		phys := components.Physics.Get(player)
		phys.SpeedX = 0
		phys.SpeedY = 0
	}
}

func placePlayer(e *donburi.Entry, x, y float64) {
	pos := components.Position.Get(e)
	pos.X = x
	pos.Y = y
	components.Collider.Get(e).Collider.SetPosition(x, y)
}

func firstPlayer(w donburi.World) *donburi.Entry {
	var found *donburi.Entry
	tags.Player.Each(w, func(e *donburi.Entry) {
		if found == nil {
			found = e
		}
	})
	return found
}

// spawnPoint picks the layout's lowest-index spawn, falling back to the
// room center when the layout defines none.
func spawnPoint(room *components.RoomData) (float64, float64) {
	layout := room.Layout
	if len(layout.PlayerSpawns) == 0 {
		return float64(layout.Width) / 2, float64(layout.Height) / 2
	}
	best := layout.PlayerSpawns[0]
	for _, s := range layout.PlayerSpawns[1:] {
		if s.Index < best.Index {
			best = s
		}
	}
	return best.X, best.Y
}

// despawnRoomEntities removes everything owned by the outgoing room.
// The player survives room changes.
func despawnRoomEntities(ecs *ecs.ECS) {
	var doomed []donburi.Entity
	components.Collider.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Platform) || e.HasComponent(tags.Crate) || e.HasComponent(tags.Probe) {
			doomed = append(doomed, e.Entity())
		}
	})
	for _, entity := range doomed {
		ecs.World.Remove(entity)
	}
}
