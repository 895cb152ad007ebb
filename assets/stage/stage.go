// Package stage loads the terrain layout drawn behind the crossing.
package stage

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

//go:embed stage.tmx
var stageFS embed.FS

// embedded map
const defaultPath = "stage.tmx"

// Kind is the terrain of a single cell, taken from the tileset "kind" property.
type Kind string

const (
	Water Kind = "water"
	Stone Kind = "stone"
	Grass Kind = "grass"
	// Empty marks a cell with no tile.
	Empty Kind = ""
)

// Layout is a row-major grid of terrain kinds.
type Layout struct {
	Columns    int
	Rows       int
	TileWidth  int
	TileHeight int
	Cells      []Kind
}

// At returns the kind of the cell at (col, row), or Empty when out of range.
func (l Layout) At(col, row int) Kind {
	if col < 0 || col >= l.Columns || row < 0 || row >= l.Rows {
		return Empty
	}
	return l.Cells[row*l.Columns+col]
}

// RowKind returns the kind of the first tile in a row.
func (l Layout) RowKind(row int) Kind {
	return l.At(0, row)
}

// Load reads the named tile layer of a Tiled map from fsys.
func Load(fsys fs.FS, path, layerName string) (Layout, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Layout{}, fmt.Errorf("load stage %s: %w", path, err)
	}

	var layer *tiled.Layer
	for _, l := range m.Layers {
		if l.Name == layerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return Layout{}, fmt.Errorf("stage %s: no tile layer %q", path, layerName)
	}
	if len(layer.Tiles) != m.Width*m.Height {
		return Layout{}, fmt.Errorf("stage %s: layer %q has %d tiles, want %d",
			path, layerName, len(layer.Tiles), m.Width*m.Height)
	}

	layout := Layout{
		Columns:    m.Width,
		Rows:       m.Height,
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
		Cells:      make([]Kind, len(layer.Tiles)),
	}
	for i, tile := range layer.Tiles {
		if tile.IsNil() {
			continue
		}
		tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
		if err != nil {
			return Layout{}, fmt.Errorf("stage %s: tile %d: %w", path, i, err)
		}
		kind := Kind(tilesetTile.Properties.GetString("kind"))
		switch kind {
		case Water, Stone, Grass:
		default:
			return Layout{}, fmt.Errorf("stage %s: tile %d has unknown kind %q", path, i, kind)
		}
		layout.Cells[i] = kind
	}
	return layout, nil
}

// MustLoad returns the embedded stage and panics if it is malformed.
func MustLoad(layerName string) Layout {
	layout, err := Load(stageFS, defaultPath, layerName)
	if err != nil {
		panic(err)
	}
	return layout
}
