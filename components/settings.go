package components

import "github.com/yohamta/donburi"

// SettingsData holds the in-session toggles.
type SettingsData struct {
	DebugOverlay bool
	Mute         bool
}

var Settings = donburi.NewComponentType[SettingsData]()
