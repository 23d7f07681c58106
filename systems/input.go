package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/components"
	cfg "github.com/mossworks/burrow/config"
)

// UpdateInput polls raw input into the InputData snapshot. Must run
// first in the system order; everything else reads the snapshot.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	input.AxisX = 0
	input.AxisY = 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		input.AxisX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		input.AxisX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		input.AxisY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		input.AxisY += 1
	}

	cx, cy := ebiten.CursorPosition()
	input.CursorX = float64(cx)
	input.CursorY = float64(cy)

	input.ToggleOverlay = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	input.ToggleMasks = inpututil.IsKeyJustPressed(ebiten.KeyF2)
	input.CycleRoom = inpututil.IsKeyJustPressed(ebiten.KeyTab)
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(ecs.World); ok {
		return components.Input.Get(entry)
	}
	entry := ecs.World.Entry(ecs.Create(cfg.Default, components.Input))
	return components.Input.Get(entry)
}
