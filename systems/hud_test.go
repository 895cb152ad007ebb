package systems

import (
	"testing"

	cfg "github.com/automoto/bugcrossing/config"
	"github.com/stretchr/testify/assert"
)

func TestHeartPulse(t *testing.T) {
	half := cfg.HUD.PulseSeconds / 2

	tests := []struct {
		name    string
		elapsed float64
		want    float64
	}{
		{"just changed", 0, cfg.HUD.PulseScale},
		{"halfway", half, 1 + (cfg.HUD.PulseScale-1)/2},
		{"finished", cfg.HUD.PulseSeconds, 1},
		{"long after", 30, 1},
		{"clock behind the change", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, heartPulse(tt.elapsed), 1e-9)
		})
	}
}
