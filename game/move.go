package game

import (
	"github.com/woodgrain/sokoban/board"
)

// MoveResult is the outcome of attempting a move. Blocked outcomes are
// normal control flow, not errors.
type MoveResult uint8

const (
	SuccessWalk MoveResult = iota // player stepped onto an empty tile
	SuccessPush                   // player pushed a box
	BlockedWall                   // wall in the way
	BlockedBox                    // box cannot be pushed (wall or box beyond)
	Win                           // push completed the level
)

func (r MoveResult) String() string {
	switch r {
	case SuccessWalk:
		return "walk"
	case SuccessPush:
		return "push"
	case BlockedWall:
		return "blocked-wall"
	case BlockedBox:
		return "blocked-box"
	case Win:
		return "win"
	}
	return "unknown"
}

// Success reports whether the move changed the state.
func (r MoveResult) Success() bool {
	return r == SuccessWalk || r == SuccessPush || r == Win
}

// ApplyMove attempts to move the player one tile in d. On success it
// returns the new state; on a blocked move it returns (nil, BlockedWall) or
// (nil, BlockedBox) and the input state is untouched. A push that leaves
// every box on a goal reports Win rather than SuccessPush.
func ApplyMove(m *board.StaticMap, s *State, d board.Direction) (*State, MoveResult) {
	adjacent := m.Neighbor(s.player, d)
	if adjacent == board.NoTile {
		return nil, BlockedWall
	}

	if !s.boxBB.Has(adjacent) {
		return s.withWalk(adjacent), SuccessWalk
	}

	// A box sits on the adjacent tile; it moves to the tile beyond, which
	// must exist and be empty.
	beyond := m.Neighbor(adjacent, d)
	if beyond == board.NoTile || s.boxBB.Has(beyond) {
		return nil, BlockedBox
	}

	next := s.withPush(adjacent, adjacent, beyond)
	if next.IsSolved(m.GoalMask()) {
		return next, Win
	}
	return next, SuccessPush
}

// CanMove reports whether a move in d is legal, without building the
// resulting state.
func CanMove(m *board.StaticMap, s *State, d board.Direction) bool {
	adjacent := m.Neighbor(s.player, d)
	if adjacent == board.NoTile {
		return false
	}
	if !s.boxBB.Has(adjacent) {
		return true
	}
	beyond := m.Neighbor(adjacent, d)
	return beyond != board.NoTile && !s.boxBB.Has(beyond)
}

// LegalMoves returns the legal directions in enumeration order.
func LegalMoves(m *board.StaticMap, s *State) []board.Direction {
	var dirs []board.Direction
	for _, d := range board.Directions {
		if CanMove(m, s, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
