package board

import (
	"fmt"

	"github.com/woodgrain/sokoban/bitboard"
)

// StaticMap is the immutable level geometry, built once from a ParsedLevel.
// All game states for a level share a single StaticMap by reference; it is
// safe to read from multiple goroutines because it is never mutated after
// construction.
type StaticMap struct {
	width  int
	height int

	numFloorTiles int

	grid       [][]CellType
	posToIndex [][]TileIndex // [row][col], NoTile for walls
	indexToPos []Position

	// neighbors[idx][dir] is the adjacent tile index, or NoTile when the
	// neighbor is off-board or a wall.
	neighbors [][NumDirections]TileIndex

	floorMask bitboard.Bitboard
	goalMask  bitboard.Bitboard

	goalPositions []Position
}

// NewStaticMap builds the tile-index space, neighbor tables and occupancy
// masks for a parsed level. Structural validation is the parser's job;
// given a valid ParsedLevel this has no failure path.
func NewStaticMap(parsed *ParsedLevel) *StaticMap {
	m := &StaticMap{
		width:         parsed.Width,
		height:        parsed.Height,
		grid:          parsed.Grid,
		goalPositions: parsed.Goals,
	}

	// Row-major scan assigns dense indices to passable cells only.
	m.posToIndex = make([][]TileIndex, m.height)
	for row := 0; row < m.height; row++ {
		m.posToIndex[row] = make([]TileIndex, m.width)
		for col := 0; col < m.width; col++ {
			if m.grid[row][col] == Wall {
				m.posToIndex[row][col] = NoTile
				continue
			}
			m.posToIndex[row][col] = m.numFloorTiles
			m.indexToPos = append(m.indexToPos, Position{Row: row, Col: col})
			m.numFloorTiles++
		}
	}

	m.floorMask = bitboard.New(m.numFloorTiles)
	for idx := 0; idx < m.numFloorTiles; idx++ {
		m.floorMask.Set(idx)
	}

	m.goalMask = bitboard.New(m.numFloorTiles)
	for _, pos := range parsed.Goals {
		m.goalMask.Set(m.posToIndex[pos.Row][pos.Col])
	}

	m.neighbors = make([][NumDirections]TileIndex, m.numFloorTiles)
	for idx := 0; idx < m.numFloorTiles; idx++ {
		pos := m.indexToPos[idx]
		for _, d := range Directions {
			dr, dc := d.Delta()
			m.neighbors[idx][d] = m.TileIndexAt(pos.Row+dr, pos.Col+dc)
		}
	}

	return m
}

// Width returns the grid width in cells.
func (m *StaticMap) Width() int { return m.width }

// Height returns the grid height in cells.
func (m *StaticMap) Height() int { return m.height }

// NumFloorTiles returns the number of passable tiles, i.e. the size of the
// tile-index space.
func (m *StaticMap) NumFloorTiles() int { return m.numFloorTiles }

// TileIndexAt returns the tile index at (row, col), or NoTile for walls and
// out-of-bounds positions.
func (m *StaticMap) TileIndexAt(row, col int) TileIndex {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return NoTile
	}
	return m.posToIndex[row][col]
}

// PositionOf returns the grid position of a tile index. Passing an invalid
// index is a programmer error and panics.
func (m *StaticMap) PositionOf(idx TileIndex) Position {
	if idx < 0 || idx >= m.numFloorTiles {
		panic(fmt.Sprintf("board: tile index %d out of range [0, %d)", idx, m.numFloorTiles))
	}
	return m.indexToPos[idx]
}

// Neighbor returns the tile index one step from idx in direction d, or
// NoTile when that step lands on a wall or off the board.
func (m *StaticMap) Neighbor(idx TileIndex, d Direction) TileIndex {
	return m.neighbors[idx][d]
}

// IsWall reports whether (row, col) is a wall. Out of bounds counts as wall.
func (m *StaticMap) IsWall(row, col int) bool {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return true
	}
	return m.grid[row][col] == Wall
}

// IsGoal reports whether (row, col) is a goal cell.
func (m *StaticMap) IsGoal(row, col int) bool {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		return false
	}
	return m.grid[row][col] == Goal
}

// IsGoalIndex reports whether a tile index is a goal.
func (m *StaticMap) IsGoalIndex(idx TileIndex) bool {
	return m.goalMask.Has(idx)
}

// FloorMask returns the mask with every valid tile-index bit set. Callers
// must not modify it; copy first.
func (m *StaticMap) FloorMask() bitboard.Bitboard { return m.floorMask }

// GoalMask returns the mask of goal tiles. Callers must not modify it.
func (m *StaticMap) GoalMask() bitboard.Bitboard { return m.goalMask }

// GoalPositions returns the goal cells as grid positions.
func (m *StaticMap) GoalPositions() []Position { return m.goalPositions }
