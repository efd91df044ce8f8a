// Package board holds the immutable per-level geometry: the parsed cell
// grid, the dense tile-index space over passable cells, precomputed
// neighbor tables, and the floor/goal occupancy masks. A StaticMap is built
// once per level and shared by reference across every game state and clone.
package board

// TileIndex identifies one passable (floor or goal) cell. Indices are
// assigned in row-major scan order at load time and never reassigned.
// Walls and off-board positions map to NoTile.
type TileIndex = int

// NoTile is the sentinel for "not a passable tile".
const NoTile TileIndex = -1

// Position is a (row, col) grid coordinate.
type Position struct {
	Row, Col int
}

// CellType is the static type of one grid cell.
type CellType uint8

const (
	Wall CellType = iota
	Floor
	Goal // floor with a goal marker
)

func (c CellType) String() string {
	switch c {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Goal:
		return "goal"
	}
	return "unknown"
}

// ParsedLevel is the parser's output and the StaticMap constructor's input:
// the cell grid plus the initial entity positions.
type ParsedLevel struct {
	Width  int
	Height int
	Grid   [][]CellType // [row][col]
	Player Position
	Boxes  []Position
	Goals  []Position
}
