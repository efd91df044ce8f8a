package game

import (
	"fmt"

	"github.com/woodgrain/sokoban/board"
)

// MoveRecord is the entire persisted history unit: a direction and whether
// the move pushed a box. Prior and later states are reconstructed from it
// against the neighbor table; no state snapshots are stored.
type MoveRecord struct {
	Dir  board.Direction
	Push bool
}

// Encode packs the record into one byte: direction in bits 1-2, push flag
// in bit 0.
func (r MoveRecord) Encode() byte {
	b := byte(r.Dir) << 1
	if r.Push {
		b |= 1
	}
	return b
}

// DecodeRecord unpacks a byte produced by Encode.
func DecodeRecord(b byte) MoveRecord {
	return MoveRecord{Dir: board.Direction(b >> 1), Push: b&1 != 0}
}

func (r MoveRecord) String() string {
	kind := "walk"
	if r.Push {
		kind = "push"
	}
	return fmt.Sprintf("MoveRecord(%s, %s)", r.Dir, kind)
}

// UndoStack is the LIFO move history with redo support. It stores only
// MoveRecords; recording a new move unconditionally clears the redo stack,
// since a fresh move invalidates any previously undone future.
type UndoStack struct {
	history   []MoveRecord
	redo      []MoveRecord
	pushCount int
}

// NewUndoStack returns an empty history.
func NewUndoStack() *UndoStack {
	return &UndoStack{}
}

// Push records a move and clears the redo stack.
func (u *UndoStack) Push(r MoveRecord) {
	u.history = append(u.history, r)
	if r.Push {
		u.pushCount++
	}
	u.redo = u.redo[:0]
}

// Pop removes the most recent move for undo, moving it to the redo stack.
// It returns ok=false and leaves everything unchanged when history is
// empty.
func (u *UndoStack) Pop() (MoveRecord, bool) {
	if len(u.history) == 0 {
		return MoveRecord{}, false
	}
	r := u.history[len(u.history)-1]
	u.history = u.history[:len(u.history)-1]
	if r.Push {
		u.pushCount--
	}
	u.redo = append(u.redo, r)
	return r, true
}

// RedoPop removes the most recently undone move, moving it back onto
// history. It returns ok=false when there is nothing to redo.
func (u *UndoStack) RedoPop() (MoveRecord, bool) {
	if len(u.redo) == 0 {
		return MoveRecord{}, false
	}
	r := u.redo[len(u.redo)-1]
	u.redo = u.redo[:len(u.redo)-1]
	u.history = append(u.history, r)
	if r.Push {
		u.pushCount++
	}
	return r, true
}

// MoveCount returns the number of moves in history.
func (u *UndoStack) MoveCount() int { return len(u.history) }

// PushCount returns the number of pushes in history.
func (u *UndoStack) PushCount() int { return u.pushCount }

// CanUndo reports whether history is non-empty.
func (u *UndoStack) CanUndo() bool { return len(u.history) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (u *UndoStack) CanRedo() bool { return len(u.redo) > 0 }

// Clear empties both stacks.
func (u *UndoStack) Clear() {
	u.history = u.history[:0]
	u.redo = u.redo[:0]
	u.pushCount = 0
}

// History returns a copy of the executed moves, oldest first.
func (u *UndoStack) History() []MoveRecord {
	h := make([]MoveRecord, len(u.history))
	copy(h, u.history)
	return h
}

// invertMove reconstructs the state before a recorded move from the state
// after it. The player's previous tile is the neighbor opposite the move
// direction; for a push, the box now sits one tile ahead of the player in
// the move direction and previously sat on the player's current tile.
func invertMove(m *board.StaticMap, s *State, r MoveRecord) *State {
	prevPlayer := m.Neighbor(s.player, r.Dir.Opposite())
	if !r.Push {
		return s.withWalk(prevPlayer)
	}
	boxNow := m.Neighbor(s.player, r.Dir)
	return s.withPush(prevPlayer, boxNow, s.player)
}

// replayMove reapplies a recorded move to the state before it (redo).
func replayMove(m *board.StaticMap, s *State, r MoveRecord) *State {
	newPlayer := m.Neighbor(s.player, r.Dir)
	if !r.Push {
		return s.withWalk(newPlayer)
	}
	boxTo := m.Neighbor(newPlayer, r.Dir)
	return s.withPush(newPlayer, newPlayer, boxTo)
}
