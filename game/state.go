// Package game contains the dynamic per-game state and the mechanics that
// evolve it: move application, reversible history, and the Game facade that
// external callers use. Static level geometry lives in the board package
// and is shared, never copied.
package game

import (
	"sort"

	"github.com/woodgrain/sokoban/bitboard"
	"github.com/woodgrain/sokoban/board"
)

// State is the dynamic game state: the player's tile index and the box
// occupancy, kept both as an ascending sorted index slice (the canonical
// form) and as a bitboard mirror for O(1) collision checks.
//
// States are replaced wholesale by every successful move, undo or redo,
// never mutated in place. That makes undo/redo pure recomputation and lets
// states linked by walks share their box storage.
type State struct {
	player board.TileIndex
	boxes  []board.TileIndex // ascending; shared across walk-linked states
	boxBB  bitboard.Bitboard
}

// NewState builds a state from a player index and box indices in any
// order. The box set is canonicalized (sorted ascending), so two
// permutations of the same occupancy produce equal states.
func NewState(numFloorTiles int, player board.TileIndex, boxes []board.TileIndex) *State {
	sorted := make([]board.TileIndex, len(boxes))
	copy(sorted, boxes)
	sort.Ints(sorted)
	return &State{
		player: player,
		boxes:  sorted,
		boxBB:  bitboard.FromIndices(numFloorTiles, sorted),
	}
}

// StateFromParsed builds the initial state of a level.
func StateFromParsed(parsed *board.ParsedLevel, m *board.StaticMap) *State {
	boxes := make([]board.TileIndex, len(parsed.Boxes))
	for i, pos := range parsed.Boxes {
		boxes[i] = m.TileIndexAt(pos.Row, pos.Col)
	}
	return NewState(m.NumFloorTiles(), m.TileIndexAt(parsed.Player.Row, parsed.Player.Col), boxes)
}

// Player returns the player's tile index.
func (s *State) Player() board.TileIndex { return s.player }

// Boxes returns the canonical sorted box indices. Callers must not modify
// the returned slice.
func (s *State) Boxes() []board.TileIndex { return s.boxes }

// BoxBitboard returns the box occupancy bitboard. Callers must not modify
// it; copy first.
func (s *State) BoxBitboard() bitboard.Bitboard { return s.boxBB }

// NumBoxes returns the number of boxes.
func (s *State) NumBoxes() int { return len(s.boxes) }

// HasBoxAt reports whether a box occupies tile idx.
func (s *State) HasBoxAt(idx board.TileIndex) bool { return s.boxBB.Has(idx) }

// IsSolved reports whether every box sits on a goal tile.
func (s *State) IsSolved(goalMask bitboard.Bitboard) bool {
	return s.boxBB.SubsetOf(goalMask)
}

// BoxesOnGoals counts the boxes currently on goal tiles.
func (s *State) BoxesOnGoals(goalMask bitboard.Bitboard) int {
	return s.boxBB.CountAnd(goalMask)
}

// Equal reports structural equality: same player tile and same box set.
func (s *State) Equal(other *State) bool {
	if s.player != other.player || len(s.boxes) != len(other.boxes) {
		return false
	}
	for i, b := range s.boxes {
		if b != other.boxes[i] {
			return false
		}
	}
	return true
}

// Copy returns an independent state. The box slice and bitboard are only
// ever replaced, not mutated, so sharing them here is safe; Copy exists so
// clone/reset get a state whose identity is their own.
func (s *State) Copy() *State {
	return &State{player: s.player, boxes: s.boxes, boxBB: s.boxBB}
}

// withWalk returns the state after the player steps to newPlayer with no
// box displaced. Box storage is shared with the receiver.
func (s *State) withWalk(newPlayer board.TileIndex) *State {
	return &State{player: newPlayer, boxes: s.boxes, boxBB: s.boxBB}
}

// withPush returns the state after the player moves to newPlayer pushing
// the box at boxFrom to boxTo. The box set is re-canonicalized and the
// bitboard mirror rebuilt from a copy.
func (s *State) withPush(newPlayer, boxFrom, boxTo board.TileIndex) *State {
	boxes := make([]board.TileIndex, 0, len(s.boxes))
	for _, b := range s.boxes {
		if b != boxFrom {
			boxes = append(boxes, b)
		}
	}
	boxes = append(boxes, boxTo)
	sort.Ints(boxes)

	bb := s.boxBB.Copy()
	bb.MoveBit(boxFrom, boxTo)

	return &State{player: newPlayer, boxes: boxes, boxBB: bb}
}
