package components

import (
	cfg "github.com/automoto/bugcrossing/config"
	"github.com/yohamta/donburi"
)

// AudioData stores the scene's audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
