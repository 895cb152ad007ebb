package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomInt(t *testing.T) {
	tests := []struct {
		name     string
		draw     float64
		min, max float64
		want     int
	}{
		{"lowest draw", 0, 0, 2, 0},
		{"middle draw", 0.5, 0, 2, 1},
		{"highest draw", 0.999, 0, 2, 2},
		{"fractional bounds round inward low", 0, 0.2, 2.8, 1},
		{"fractional bounds round inward high", 0.99, 0.2, 2.8, 2},
		{"single value range", 0.7, 3, 3, 3},
		{"negative range", 0, -2, 1, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RandomInt(newFixedSource(tt.draw), tt.min, tt.max)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRandomIntCoversInclusiveRange(t *testing.T) {
	src := rand.New(rand.NewSource(12345))
	seen := map[int]int{}
	for i := 0; i < 3000; i++ {
		v := RandomInt(src, 0, 2)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 2)
		seen[v]++
	}
	assert.Len(t, seen, 3, "every lane should be drawn")
}

func TestRandomSpeed(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, 80.0, RandomSpeed(newFixedSource(0), &rules))
	assert.Equal(t, 230.0, RandomSpeed(newFixedSource(0.5), &rules))
	assert.Less(t, RandomSpeed(newFixedSource(0.9999), &rules), 380.0)
}
