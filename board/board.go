// Package board owns the tile grid of a round: creation, random values and cleared flags
package board

import (
	"github.com/lixenwraith/fruitbox/constants"
	"github.com/lixenwraith/fruitbox/vmath"
)

// Source is the random generator used to assign tile values
// *math/rand/v2.Rand satisfies it; tests inject fixed sequences
type Source interface {
	IntN(n int) int
}

// Tile is a single numbered piece occupying one grid cell
type Tile struct {
	ID       int
	Col, Row int
	Value    int
	Cleared  bool
	Bounds   vmath.Rect
}

// Center returns the point used for selection hit-testing
func (t Tile) Center() vmath.Point {
	return t.Bounds.Center()
}

// Board is a columns × rows grid of tiles laid out edge to edge
// Tile IDs are row-major indices and stay stable for the lifetime of a round
type Board struct {
	cols, rows int
	cell       vmath.Size
	tiles      []Tile
	cleared    int
}

// New creates an empty board; call Reset to fill it
func New(cols, rows int, cell vmath.Size) *Board {
	return &Board{
		cols: cols,
		rows: rows,
		cell: cell,
	}
}

// Reset discards all tiles and regenerates the grid with values drawn from src
func (b *Board) Reset(src Source) {
	span := constants.MaxTileValue - constants.MinTileValue + 1

	b.tiles = make([]Tile, 0, b.cols*b.rows)
	b.cleared = 0
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			origin := vmath.Point{X: float64(col) * b.cell.W, Y: float64(row) * b.cell.H}
			b.tiles = append(b.tiles, Tile{
				ID:     len(b.tiles),
				Col:    col,
				Row:    row,
				Value:  constants.MinTileValue + src.IntN(span),
				Bounds: vmath.RectAt(origin, b.cell),
			})
		}
	}
}

// Remove marks the given tiles cleared and returns how many were newly cleared
// Unknown IDs and tiles already cleared are skipped
func (b *Board) Remove(ids []int) int {
	n := 0
	for _, id := range ids {
		if id < 0 || id >= len(b.tiles) || b.tiles[id].Cleared {
			continue
		}
		b.tiles[id].Cleared = true
		n++
	}
	b.cleared += n
	return n
}

// Active returns the tiles that are not cleared, in ID order
func (b *Board) Active() []Tile {
	active := make([]Tile, 0, len(b.tiles)-b.cleared)
	for _, t := range b.tiles {
		if !t.Cleared {
			active = append(active, t)
		}
	}
	return active
}

// Tiles returns every tile, cleared or not, in ID order
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Tile returns the tile with the given ID
func (b *Board) Tile(id int) (Tile, bool) {
	if id < 0 || id >= len(b.tiles) {
		return Tile{}, false
	}
	return b.tiles[id], true
}

// Sum adds the values of the given tiles
func (b *Board) Sum(ids []int) int {
	sum := 0
	for _, id := range ids {
		if t, ok := b.Tile(id); ok {
			sum += t.Value
		}
	}
	return sum
}

// Total returns the number of tiles in a full grid
func (b *Board) Total() int { return b.cols * b.rows }

// Bounds returns the play area in board-local coordinates, origin at (0,0)
func (b *Board) Bounds() vmath.Rect {
	return vmath.RectAt(vmath.Point{}, vmath.Size{
		W: float64(b.cols) * b.cell.W,
		H: float64(b.rows) * b.cell.H,
	})
}
