package components

import "github.com/yohamta/donburi"

// PlatformData anchors a moving platform: the tween yields an offset
// from BaseY, so platforms stay deterministic across room reloads.
type PlatformData struct {
	BaseX, BaseY float64
}

var Platform = donburi.NewComponentType[PlatformData]()
