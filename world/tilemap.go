package world

import (
	"math"

	"roomforge/data"
	"roomforge/geom"
)

// TileMap is a width×height grid of tile definition ids. An empty cell
// holds the zero TileDefID.
type TileMap struct {
	Width  int              `yaml:"width"`
	Height int              `yaml:"height"`
	Cells  []data.TileDefID `yaml:"cells,flow"`
}

// NewTileMap creates an empty grid.
func NewTileMap(width, height int) TileMap {
	return TileMap{
		Width:  width,
		Height: height,
		Cells:  make([]data.TileDefID, width*height),
	}
}

// Get returns the tile definition id at gp. The second result is false when
// gp is out of bounds or the cell is empty.
func (m *TileMap) Get(gp GridPos) (data.TileDefID, bool) {
	if !gp.InBounds(m.Width, m.Height) {
		return "", false
	}
	id := m.Cells[gp.Y*m.Width+gp.X]
	return id, id != ""
}

// Set writes the tile definition id at gp. Out-of-bounds writes are
// ignored.
func (m *TileMap) Set(gp GridPos, id data.TileDefID) {
	if !gp.InBounds(m.Width, m.Height) {
		return
	}
	m.Cells[gp.Y*m.Width+gp.X] = id
}

// Clear empties the cell at gp.
func (m *TileMap) Clear(gp GridPos) {
	m.Set(gp, "")
}

// GridPos addresses one tile cell.
type GridPos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// InBounds reports whether the position falls inside a width×height grid.
func (gp GridPos) InBounds(width, height int) bool {
	return gp.X >= 0 && gp.Y >= 0 && gp.X < width && gp.Y < height
}

// WorldPos converts the cell address to the world position of its top-left
// corner.
func (gp GridPos) WorldPos(tileSize float64) geom.Vec2 {
	return geom.V(float64(gp.X)*tileSize, float64(gp.Y)*tileSize)
}

// GridFromWorld converts a world position to the containing cell address.
func GridFromWorld(pos geom.Vec2, tileSize float64) GridPos {
	return GridPos{
		X: int(math.Floor(pos.X / tileSize)),
		Y: int(math.Floor(pos.Y / tileSize)),
	}
}
