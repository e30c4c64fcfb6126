package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/homestead/components"
	cfg "github.com/automoto/homestead/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const (
	settingsItem    = "settings"
	settingsVersion = 1
)

// SavedSettings is the on-disk form of the player's display preferences.
type SavedSettings struct {
	Version              int  `json:"version"`
	ShowCollisionObjects bool `json:"showCollisionObjects"`
	Fullscreen           bool `json:"fullscreen"`
}

// settingsStore wraps the gdata manager. A nil store drops every save,
// so the game keeps running when no storage is available.
type settingsStore struct {
	m *gdata.Manager
}

var store *settingsStore

// InitPersistence opens the per-user data directory for settings.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{AppName: "homestead"})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	store = &settingsStore{m: m}
	return nil
}

func (s *settingsStore) load() (*SavedSettings, error) {
	if s == nil {
		return nil, nil
	}
	data, err := s.m.LoadItem(settingsItem)
	if err != nil || data == nil {
		// Nothing saved yet.
		return nil, err
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	if saved.Version != settingsVersion {
		log.Printf("Ignoring saved settings with version %d", saved.Version)
		return nil, nil
	}
	return &saved, nil
}

func (s *settingsStore) save(saved *SavedSettings) error {
	if s == nil {
		return nil
	}
	saved.Version = settingsVersion
	data, err := json.Marshal(saved)
	if err != nil {
		return err
	}
	return s.m.SaveItem(settingsItem, data)
}

// LoadSettings returns the saved settings, or nil when there are none.
func LoadSettings() (*SavedSettings, error) {
	return store.load()
}

// SaveCurrentSettings writes the scene's settings, logging failures.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		ShowCollisionObjects: s.Debug,
		Fullscreen:           s.Fullscreen,
	}
	if err := store.save(saved); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.ShowCollisionObjects = saved.ShowCollisionObjects
	ebiten.SetFullscreen(saved.Fullscreen)
}
