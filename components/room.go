package components

import (
	"github.com/yohamta/donburi"

	"github.com/mossworks/burrow/collision"
	"github.com/mossworks/burrow/config"
	"github.com/mossworks/burrow/leveldata"
)

// RoomData is the active tilemap state. Masks is rebuilt wholesale every
// time Index changes, never patched in place, so queries in a frame
// always see one consistent compilation.
type RoomData struct {
	Layouts  []*leveldata.Layout
	Registry *config.BehaviorRegistry
	Index    int

	Layout *leveldata.Layout
	Masks  *collision.MaskSet
}

var Room = donburi.NewComponentType[RoomData]()
