package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/mossworks/burrow/components"
	cfg "github.com/mossworks/burrow/config"
)

// GetOrCreateSettings returns the singleton settings component,
// creating it with overlay enabled on first use. The demo exists to
// show the collision state, so the overlay defaults on.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(ecs.World); ok {
		return components.Settings.Get(entry)
	}
	entry := ecs.World.Entry(ecs.Create(cfg.Default, components.Settings))
	settings := components.Settings.Get(entry)
	settings.Overlay = true
	settings.ShowMasks = true
	return settings
}

// UpdateSettings applies overlay toggles and persists them.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !input.ToggleOverlay && !input.ToggleMasks {
		return
	}
	settings := GetOrCreateSettings(ecs)
	if input.ToggleOverlay {
		settings.Overlay = !settings.Overlay
	}
	if input.ToggleMasks {
		settings.ShowMasks = !settings.ShowMasks
	}
	SaveCurrentSettings(settings)
}
