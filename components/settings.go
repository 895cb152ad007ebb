package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Hitboxes bool // debug collision overlay
}

var Settings = donburi.NewComponentType[SettingsData]()
