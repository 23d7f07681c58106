package components

import "github.com/yohamta/donburi"

// InputData is the polled input snapshot for the frame. Systems read
// this instead of polling ebiten directly, which keeps them testable.
type InputData struct {
	AxisX, AxisY float64

	CursorX, CursorY float64

	ToggleOverlay bool
	ToggleMasks   bool
	CycleRoom     bool
}

var Input = donburi.NewComponentType[InputData]()
