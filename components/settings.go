package components

import "github.com/yohamta/donburi"

// SettingsData is the runtime copy of the persisted user settings
type SettingsData struct {
	Debug      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
