package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/archetypes"
	"github.com/mossworks/burrow/components"
	"github.com/mossworks/burrow/config"
	"github.com/mossworks/burrow/leveldata"
)

// CreateRoom spawns the singleton room entity holding every loaded
// layout. No layout is active until systems.ActivateRoom runs.
func CreateRoom(ecs *ecs.ECS, layouts []*leveldata.Layout, reg *config.BehaviorRegistry) *donburi.Entry {
	room := archetypes.Room.Spawn(ecs)
	components.Room.SetValue(room, components.RoomData{
		Layouts:  layouts,
		Registry: reg,
		Index:    -1,
	})
	return room
}
