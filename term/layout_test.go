package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLayoutSize(t *testing.T) {
	l := DefaultLayout()

	assert.Equal(t, 40, l.Width())
	assert.Equal(t, 18, l.Height())
	assert.Equal(t, 19, l.HUDRow())
}

func TestToCellGrid(t *testing.T) {
	l := DefaultLayout()

	tests := []struct {
		name   string
		x, y   float64
		gx, gy int
	}{
		{"player start", 200, 390, 2, 5},
		{"first lane", 0, 55, 0, 1},
		{"second lane", 0, 138, 0, 2},
		{"third lane", 0, 221, 0, 3},
		{"top clamp", 200, -20, 2, 0},
		{"left clamp", -2, 390, 0, 5},
		{"right clamp", 402, 390, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := l.ToCell(tt.x, tt.y)
			assert.True(t, l.InStage(col, row))
			gx, gy := l.GridCell(col, row)
			assert.Equal(t, tt.gx, gx)
			assert.Equal(t, tt.gy, gy)
		})
	}
}

func TestGridCellNegative(t *testing.T) {
	l := DefaultLayout()

	gx, gy := l.GridCell(-1, 0)
	assert.Equal(t, -1, gx)
	assert.Equal(t, -1, gy)
	assert.False(t, l.InStage(-1, 5))
	assert.False(t, l.InStage(0, 0))
	assert.False(t, l.InStage(40, 5))
}
