package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Overlay   bool // draw collider/mask outlines
	ShowMasks bool // include compiled tilemap masks in the overlay
}

var Settings = donburi.NewComponentType[SettingsData]()
