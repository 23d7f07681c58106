package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/mossworks/burrow/config"
)

const hudMargin = 4

// DrawHUD prints the active room and the overlay key bindings.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	room := activeRoom(ecs.World)
	if room == nil || room.Layout == nil {
		return
	}

	masks := 0
	if room.Masks != nil {
		masks = room.Masks.Len()
	}
	line := fmt.Sprintf("%s (%d/%d)  masks: %d", room.Layout.Name, room.Index+1, len(room.Layouts), masks)
	ebitenutil.DebugPrintAt(screen, line, hudMargin, hudMargin)
	ebitenutil.DebugPrintAt(screen, "WASD/arrows move  Tab room  F1 overlay  F2 masks",
		hudMargin, cfg.C.Height-16)
}
