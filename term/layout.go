// Package term plays the crossing in a terminal on top of tcell.
package term

import "math"

// Layout maps world pixels onto terminal cells. Each stage grid cell covers
// CellCols x CellRows terminal cells.
type Layout struct {
	Columns, Rows      int // stage grid size
	CellCols, CellRows int
	CellWidth          float64 // world pixels per grid cell
	CellHeight         float64
	// Sprite art sits below and right of an entity's position; these shift
	// the anchor onto the drawn body.
	SpriteCenterX float64
	OffsetY       float64
	Top           int // terminal row of the stage's top edge
}

// DefaultLayout fits the 5x6 stage into 40x18 cells with a message line above.
func DefaultLayout() Layout {
	return Layout{
		Columns:       5,
		Rows:          6,
		CellCols:      8,
		CellRows:      3,
		CellWidth:     101,
		CellHeight:    83,
		SpriteCenterX: 50.5,
		OffsetY:       70,
		Top:           1,
	}
}

// Width is the stage width in terminal columns.
func (l Layout) Width() int {
	return l.Columns * l.CellCols
}

// Height is the stage height in terminal rows.
func (l Layout) Height() int {
	return l.Rows * l.CellRows
}

// HUDRow is the terminal row of the lives line.
func (l Layout) HUDRow() int {
	return l.Top + l.Height()
}

// ToCell returns the terminal cell under the drawn body of a sprite at (x, y).
func (l Layout) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor((x + l.SpriteCenterX) * float64(l.CellCols) / l.CellWidth))
	row = l.Top + int(math.Floor((y+l.OffsetY)*float64(l.CellRows)/l.CellHeight))
	return col, row
}

// GridCell returns the stage grid cell containing terminal cell (col, row).
func (l Layout) GridCell(col, row int) (gx, gy int) {
	return floorDiv(col, l.CellCols), floorDiv(row-l.Top, l.CellRows)
}

// InStage reports whether a terminal cell lies on the stage.
func (l Layout) InStage(col, row int) bool {
	return col >= 0 && col < l.Width() && row >= l.Top && row < l.Top+l.Height()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
