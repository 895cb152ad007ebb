package assets

import (
	"fmt"

	"github.com/automoto/bugcrossing/assets/tone"
	cfg "github.com/automoto/bugcrossing/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesises and caches sound effect PCM
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a cue into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	cue, ok := cfg.Sound.Cues[id]
	if !ok {
		return fmt.Errorf("no cue for sound %d", id)
	}
	l.sfxCache[id] = tone.PCM16(l.context.SampleRate(), cue, 1)
	return nil
}

// LoadSFX returns a new player for a cue each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}
