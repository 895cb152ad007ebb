package config

import (
	"time"

	"github.com/automoto/bugcrossing/assets/tone"
	"github.com/automoto/bugcrossing/core"
)

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundStep
	SoundWin
	SoundDeath
	SoundGameOver
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Muted         bool
}

// SoundConfig maps sound IDs to synthesised cues
type SoundConfig struct {
	Cues              map[SoundID][]tone.Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.4,
	}

	Sound = SoundConfig{
		Cues: map[SoundID][]tone.Tone{
			SoundStep:       {{Freq: 660, Dur: 30 * time.Millisecond}},
			SoundWin:        {{Freq: 660, Dur: 80 * time.Millisecond}, {Freq: 990, Dur: 160 * time.Millisecond}},
			SoundDeath:      {{Freq: 220, Dur: 200 * time.Millisecond}},
			SoundGameOver:   {{Freq: 165, Dur: 200 * time.Millisecond}, {Freq: 110, Dur: 400 * time.Millisecond}},
			SoundMenuSelect: {{Freq: 880, Dur: 40 * time.Millisecond}},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundStep: 0.5,
		},
	}
}

// EventSounds picks the cue played for each session event.
var EventSounds = map[core.EventKind]SoundID{
	core.EventStep:     SoundStep,
	core.EventWin:      SoundWin,
	core.EventDeath:    SoundDeath,
	core.EventGameOver: SoundGameOver,
}
