package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollisionBoundaries(t *testing.T) {
	rules := DefaultRules()
	p := NewPlayer(&rules, NewHUD())
	// player box spans x [200, 260) and y [221, 301)
	p.Pos = Vec{X: 200, Y: 221}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"touching left edge", 140, 221, false},
		{"just inside left edge", 140.01, 221, true},
		{"touching right edge", 260, 221, false},
		{"just inside right edge", 259.99, 221, true},
		{"touching top edge", 200, 138, false},
		{"just inside top edge", 200, 138.01, true},
		{"touching bottom edge", 200, 301, false},
		{"just inside bottom edge", 200, 300.99, true},
		{"same cell", 200, 221, true},
		{"other lane", 200, 55, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnemy(&rules, newFixedSource(0), tt.x, tt.y, 100, 1, 0, SpriteEnemy)
			assert.Equal(t, tt.want, Collision(p, []*Enemy{e}))
			assert.Equal(t, tt.want, e.Box().Overlaps(p.Box()))
			assert.Equal(t, tt.want, p.Box().Overlaps(e.Box()), "overlap is symmetric")
		})
	}
}

func TestCollisionAnyEnemy(t *testing.T) {
	rules := DefaultRules()
	p := NewPlayer(&rules, NewHUD())
	p.Pos = Vec{X: 200, Y: 221}

	miss := NewEnemy(&rules, newFixedSource(0), -90, 55, 100, 1, 0, SpriteEnemy)
	hit := NewEnemy(&rules, newFixedSource(0), 210, 221, 100, 1, 0, SpriteEnemy)

	assert.False(t, Collision(p, nil))
	assert.False(t, Collision(p, []*Enemy{miss, miss}))
	assert.True(t, Collision(p, []*Enemy{miss, hit}))
	assert.True(t, Collision(p, []*Enemy{hit, miss}))
	assert.True(t, p.Collision([]*Enemy{miss, hit}))
}

func TestCollisionDoesNotMutate(t *testing.T) {
	rules := DefaultRules()
	p := NewPlayer(&rules, NewHUD())
	e := NewEnemy(&rules, newFixedSource(0), 200, 390, 100, 1, 0, SpriteEnemy)

	assert.True(t, Collision(p, []*Enemy{e}))
	assert.Equal(t, 3, p.Lives)
	assert.Equal(t, Vec{X: 200, Y: 390}, p.Pos)
	assert.Equal(t, Vec{X: 200, Y: 390}, e.Pos)
}
