package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Crate    = donburi.NewTag().SetName("Crate")
	Probe    = donburi.NewTag().SetName("Probe")
	Platform = donburi.NewTag().SetName("Platform")
)

// Behavior names as they appear in tileset properties and the behavior
// registry. Codes are looked up at runtime, never hardcoded.
const (
	BehaviorSolid  = "solid"
	BehaviorHazard = "hazard"
	BehaviorSensor = "sensor"
)
