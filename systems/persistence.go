package systems

import (
	"encoding/json"
	"os"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"

	"github.com/mossworks/burrow/components"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "systems"})

// SavedSettings represents the overlay settings stored on disk
type SavedSettings struct {
	Overlay   bool `json:"overlay"`
	ShowMasks bool `json:"showMasks"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage.
// The demo runs fine without it; failures just lose toggle persistence.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "burrow",
	})
	if err != nil {
		logger.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads saved settings from disk. Returns nil when nothing
// was saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		logger.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Warn("could not parse saved settings", "err", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		logger.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the live settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Overlay:   s.Overlay,
		ShowMasks: s.ShowMasks,
	})
}

// ApplySavedSettings applies loaded settings to the live component
func ApplySavedSettings(settings *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings.Overlay = saved.Overlay
	settings.ShowMasks = saved.ShowMasks
}
