package term

import (
	"fmt"
	"time"

	"github.com/automoto/bugcrossing/core"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Sounder plays a cue for a session event.
type Sounder interface {
	Play(kind core.EventKind)
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Play(core.EventKind) {}

type tone struct {
	freq float64
	dur  time.Duration
}

// Cues per event kind; tones in a cue play back to back.
var cues = map[core.EventKind][]tone{
	core.EventStep:     {{freq: 660, dur: 30 * time.Millisecond}},
	core.EventWin:      {{freq: 660, dur: 80 * time.Millisecond}, {freq: 990, dur: 160 * time.Millisecond}},
	core.EventDeath:    {{freq: 220, dur: 200 * time.Millisecond}},
	core.EventGameOver: {{freq: 165, dur: 200 * time.Millisecond}, {freq: 110, dur: 400 * time.Millisecond}},
}

const sampleRate = beep.SampleRate(44100)

// Beeper plays sine tone cues through the system speaker.
type Beeper struct {
	streams map[core.EventKind]func() beep.Streamer
}

// NewBeeper initialises the speaker. Callers fall back to Silent on error.
func NewBeeper() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	b := &Beeper{streams: map[core.EventKind]func() beep.Streamer{}}
	for kind, tones := range cues {
		tones := tones
		// generators are infinite streams, so build a fresh one per play
		b.streams[kind] = func() beep.Streamer {
			parts := make([]beep.Streamer, 0, len(tones))
			for _, t := range tones {
				sine, err := generators.SineTone(sampleRate, t.freq)
				if err != nil {
					continue
				}
				parts = append(parts, beep.Take(sampleRate.N(t.dur), sine))
			}
			return beep.Seq(parts...)
		}
	}
	return b, nil
}

func (b *Beeper) Play(kind core.EventKind) {
	stream, ok := b.streams[kind]
	if !ok {
		return
	}
	speaker.Play(stream())
}

// Close releases the speaker.
func (b *Beeper) Close() {
	speaker.Close()
}
