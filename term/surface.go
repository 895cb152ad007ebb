package term

import (
	"github.com/automoto/bugcrossing/assets/stage"
	"github.com/automoto/bugcrossing/core"
	"github.com/gdamore/tcell/v2"
)

// Glyph is the terminal rendition of a sprite.
type Glyph struct {
	Text  string
	Style tcell.Style
}

var defaultGlyphs = map[core.SpriteID]Glyph{
	core.SpriteEnemy:  {Text: "<@@>", Style: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)},
	core.SpritePlayer: {Text: "☺", Style: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)},
}

var placeholderGlyph = Glyph{Text: "?", Style: tcell.StyleDefault.Foreground(tcell.ColorFuchsia)}

var terrainColors = map[stage.Kind]tcell.Color{
	stage.Water: tcell.ColorNavy,
	stage.Stone: tcell.ColorGray,
	stage.Grass: tcell.ColorGreen,
}

// Surface draws sprites as glyphs on a tcell screen over the stage terrain.
type Surface struct {
	screen  tcell.Screen
	layout  Layout
	terrain stage.Layout
	glyphs  map[core.SpriteID]Glyph
}

var _ core.Surface = (*Surface)(nil)

func NewSurface(screen tcell.Screen, layout Layout, terrain stage.Layout) *Surface {
	return &Surface{
		screen:  screen,
		layout:  layout,
		terrain: terrain,
		glyphs:  defaultGlyphs,
	}
}

// terrainStyle is the background style of a terminal cell.
func (s *Surface) terrainStyle(col, row int) tcell.Style {
	gx, gy := s.layout.GridCell(col, row)
	bg, ok := terrainColors[s.terrain.At(gx, gy)]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Background(bg)
}

// DrawStage fills the stage area with terrain colors.
func (s *Surface) DrawStage() {
	for row := s.layout.Top; row < s.layout.Top+s.layout.Height(); row++ {
		for col := 0; col < s.layout.Width(); col++ {
			s.screen.SetContent(col, row, ' ', nil, s.terrainStyle(col, row))
		}
	}
}

// DrawSprite centers the sprite's glyph on its body cell and clips it to the stage.
func (s *Surface) DrawSprite(id core.SpriteID, x, y float64) {
	g, ok := s.glyphs[id]
	if !ok {
		g = placeholderGlyph
	}
	runes := []rune(g.Text)
	col, row := s.layout.ToCell(x, y)
	col -= len(runes) / 2

	for i, r := range runes {
		c := col + i
		if !s.layout.InStage(c, row) {
			continue
		}
		_, bg, _ := s.terrainStyle(c, row).Decompose()
		s.screen.SetContent(c, row, r, nil, g.Style.Background(bg))
	}
}

// DrawText writes str starting at (col, row).
func (s *Surface) DrawText(col, row int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.screen.SetContent(col+i, row, r, nil, style)
	}
}

// DrawCentered writes str centered over the stage width.
func (s *Surface) DrawCentered(row int, str string, style tcell.Style) {
	col := (s.layout.Width() - len([]rune(str))) / 2
	if col < 0 {
		col = 0
	}
	s.DrawText(col, row, str, style)
}
