// Package tone synthesises the short sine cues used as sound effects.
package tone

import (
	"encoding/binary"
	"math"
	"time"
)

// Tone is one note of a cue.
type Tone struct {
	Freq float64 // Hz; 0 is a rest
	Dur  time.Duration
}

// fadeSamples ramps each note in and out to avoid clicks.
const fadeSamples = 64

// samples returns the number of frames a cue spans at sampleRate.
func samples(sampleRate int, tones []Tone) int {
	n := 0
	for _, t := range tones {
		n += frames(sampleRate, t.Dur)
	}
	return n
}

func frames(sampleRate int, d time.Duration) int {
	return int(int64(d) * int64(sampleRate) / int64(time.Second))
}

// PCM16 renders tones back to back as signed 16-bit little-endian stereo,
// the layout ebiten's audio players read. volume is clamped to [0, 1].
func PCM16(sampleRate int, tones []Tone, volume float64) []byte {
	volume = math.Max(0, math.Min(1, volume))
	buf := make([]byte, 0, samples(sampleRate, tones)*4)

	for _, t := range tones {
		n := frames(sampleRate, t.Dur)
		for i := 0; i < n; i++ {
			var v float64
			if t.Freq > 0 {
				v = math.Sin(2*math.Pi*t.Freq*float64(i)/float64(sampleRate)) * envelope(i, n)
			}
			s := uint16(int16(v * volume * math.MaxInt16))
			// left, right
			buf = binary.LittleEndian.AppendUint16(buf, s)
			buf = binary.LittleEndian.AppendUint16(buf, s)
		}
	}
	return buf
}

func envelope(i, n int) float64 {
	fade := min(fadeSamples, n/2)
	if fade == 0 {
		return 1
	}
	switch {
	case i < fade:
		return float64(i) / float64(fade)
	case i >= n-fade:
		return float64(n-1-i) / float64(fade)
	}
	return 1
}
