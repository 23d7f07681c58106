package components

import "github.com/yohamta/donburi"

// PositionData is the entity's logical origin. The collider shape is
// derived from it on every move; nothing reads shape coordinates as a
// source of truth for position.
type PositionData struct {
	X, Y float64
}

var Position = donburi.NewComponentType[PositionData]()
