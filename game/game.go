package game

import (
	"github.com/woodgrain/sokoban/board"
	"github.com/woodgrain/sokoban/movegen"
	"github.com/woodgrain/sokoban/zobrist"
)

// DefaultZobristSeed is used by NewGame. Hashes for a given level are
// reproducible across runs and processes as long as the seed matches.
const DefaultZobristSeed uint64 = 0

// Game is the facade external callers use: it owns one shared StaticMap and
// Hasher, the initial state snapshot, the current state, the move history,
// and the running Zobrist hash, which is maintained incrementally across
// every move, undo and redo.
//
// A Game is not safe for concurrent use. Independent games (including
// clones) may be driven from separate goroutines; the StaticMap and Hasher
// they share are read-only after construction.
type Game struct {
	m      *board.StaticMap
	hasher *zobrist.Hasher

	initial *State
	cur     *State
	history *UndoStack
	hash    uint64
}

// NewGame parses an XSB level string and starts a game on it.
func NewGame(levelText string) (*Game, error) {
	return NewGameSeeded(levelText, DefaultZobristSeed)
}

// NewGameSeeded is NewGame with an explicit Zobrist seed.
func NewGameSeeded(levelText string, seed uint64) (*Game, error) {
	parsed, err := board.ParseLevel(levelText)
	if err != nil {
		return nil, err
	}
	return NewGameFromParsed(parsed, seed), nil
}

// NewGameFromParsed starts a game from an already-parsed level.
func NewGameFromParsed(parsed *board.ParsedLevel, seed uint64) *Game {
	m := board.NewStaticMap(parsed)
	initial := StateFromParsed(parsed, m)
	hasher := zobrist.New(m.NumFloorTiles(), seed)
	return &Game{
		m:       m,
		hasher:  hasher,
		initial: initial,
		cur:     initial.Copy(),
		history: NewUndoStack(),
		hash:    hasher.Hash(initial.Player(), initial.Boxes()),
	}
}

// StaticMap returns the shared immutable level geometry.
func (g *Game) StaticMap() *board.StaticMap { return g.m }

// Hasher returns the shared Zobrist hasher.
func (g *Game) Hasher() *zobrist.Hasher { return g.hasher }

// State returns the current state, for advanced callers. Treat it as
// read-only; it is replaced, never mutated, by game operations.
func (g *Game) State() *State { return g.cur }

// Width returns the board width in cells.
func (g *Game) Width() int { return g.m.Width() }

// Height returns the board height in cells.
func (g *Game) Height() int { return g.m.Height() }

// PlayerPosition returns the player's grid position.
func (g *Game) PlayerPosition() board.Position {
	return g.m.PositionOf(g.cur.Player())
}

// BoxPositions returns the current box grid positions in canonical
// (ascending tile index) order.
func (g *Game) BoxPositions() []board.Position {
	positions := make([]board.Position, g.cur.NumBoxes())
	for i, idx := range g.cur.Boxes() {
		positions[i] = g.m.PositionOf(idx)
	}
	return positions
}

// GoalPositions returns the static goal positions.
func (g *Game) GoalPositions() []board.Position { return g.m.GoalPositions() }

// NumBoxes returns the number of boxes in the level.
func (g *Game) NumBoxes() int { return g.cur.NumBoxes() }

// IsSolved reports whether every box is on a goal.
func (g *Game) IsSolved() bool { return g.cur.IsSolved(g.m.GoalMask()) }

// BoxesOnGoals counts boxes currently on goal tiles.
func (g *Game) BoxesOnGoals() int { return g.cur.BoxesOnGoals(g.m.GoalMask()) }

// MoveCount returns the number of moves made, walks included.
func (g *Game) MoveCount() int { return g.history.MoveCount() }

// PushCount returns the number of pushes made.
func (g *Game) PushCount() int { return g.history.PushCount() }

// IsWall reports whether the cell is a wall.
func (g *Game) IsWall(row, col int) bool { return g.m.IsWall(row, col) }

// IsGoal reports whether the cell is a goal.
func (g *Game) IsGoal(row, col int) bool { return g.m.IsGoal(row, col) }

// IsFloor reports whether the cell is passable.
func (g *Game) IsFloor(row, col int) bool { return !g.m.IsWall(row, col) }

// IsBox reports whether a box currently occupies the cell.
func (g *Game) IsBox(row, col int) bool {
	idx := g.m.TileIndexAt(row, col)
	return idx != board.NoTile && g.cur.HasBoxAt(idx)
}

// IsPlayer reports whether the player currently occupies the cell.
func (g *Game) IsPlayer(row, col int) bool {
	idx := g.m.TileIndexAt(row, col)
	return idx != board.NoTile && idx == g.cur.Player()
}

// Move attempts a move in d. On success the state is replaced, the move is
// recorded (clearing any redo future) and the running hash updated. Blocked
// results leave the game untouched.
func (g *Game) Move(d board.Direction) MoveResult {
	next, result := ApplyMove(g.m, g.cur, d)
	if next == nil {
		return result
	}

	wasPush := result == SuccessPush || result == Win
	if wasPush {
		// The box's old tile is the player's new tile.
		boxFrom := next.Player()
		boxTo := g.m.Neighbor(boxFrom, d)
		g.hash = g.hasher.AddPush(g.hash, g.cur.Player(), boxFrom, boxFrom, boxTo)
	} else {
		g.hash = g.hasher.AddWalk(g.hash, g.cur.Player(), next.Player())
	}

	g.history.Push(MoveRecord{Dir: d, Push: wasPush})
	g.cur = next
	return result
}

// CanMove reports whether a move in d would succeed, without executing it.
func (g *Game) CanMove(d board.Direction) bool {
	return CanMove(g.m, g.cur, d)
}

// LegalMoves returns the legal directions in enumeration order.
func (g *Game) LegalMoves() []board.Direction {
	return LegalMoves(g.m, g.cur)
}

// LegalPushes enumerates every (box, direction) push the player can
// currently perform, taking reachability into account. This is the API a
// solver built on top consumes.
func (g *Game) LegalPushes() []movegen.Push {
	return movegen.LegalPushes(g.m, g.cur.Player(), g.cur.BoxBitboard())
}

// Reachable returns the bitboard of tiles the player can walk to without
// displacing any box.
func (g *Game) Reachable() []int {
	return movegen.Reachable(g.m, g.cur.Player(), g.cur.BoxBitboard()).Indices()
}

// Undo reverts the most recent move by inversion. It reports false, with no
// state change, when there is no history.
func (g *Game) Undo() bool {
	r, ok := g.history.Pop()
	if !ok {
		return false
	}
	prev := invertMove(g.m, g.cur, r)
	if r.Push {
		boxNow := g.m.Neighbor(g.cur.Player(), r.Dir)
		g.hash = g.hasher.AddPush(g.hash, g.cur.Player(), prev.Player(), boxNow, g.cur.Player())
	} else {
		g.hash = g.hasher.AddWalk(g.hash, g.cur.Player(), prev.Player())
	}
	g.cur = prev
	return true
}

// Redo replays the most recently undone move. It reports false when there
// is nothing to redo.
func (g *Game) Redo() bool {
	r, ok := g.history.RedoPop()
	if !ok {
		return false
	}
	next := replayMove(g.m, g.cur, r)
	if r.Push {
		boxFrom := next.Player()
		boxTo := g.m.Neighbor(boxFrom, r.Dir)
		g.hash = g.hasher.AddPush(g.hash, g.cur.Player(), boxFrom, boxFrom, boxTo)
	} else {
		g.hash = g.hasher.AddWalk(g.hash, g.cur.Player(), next.Player())
	}
	g.cur = next
	return true
}

// CanUndo reports whether Undo would do anything.
func (g *Game) CanUndo() bool { return g.history.CanUndo() }

// CanRedo reports whether Redo would do anything.
func (g *Game) CanRedo() bool { return g.history.CanRedo() }

// Reset restores the initial state and clears all history.
func (g *Game) Reset() {
	g.cur = g.initial.Copy()
	g.history.Clear()
	g.hash = g.hasher.Hash(g.cur.Player(), g.cur.Boxes())
}

// MoveHistory returns a copy of the executed moves, oldest first.
func (g *Game) MoveHistory() []MoveRecord { return g.history.History() }

// StateHash returns the running Zobrist hash of the current state.
func (g *Game) StateHash() uint64 { return g.hash }

// CanonicalState returns the player tile index and a copy of the sorted box
// indices: a hashable key independent of the Zobrist scheme.
func (g *Game) CanonicalState() (board.TileIndex, []board.TileIndex) {
	boxes := make([]board.TileIndex, g.cur.NumBoxes())
	copy(boxes, g.cur.Boxes())
	return g.cur.Player(), boxes
}

// Clone returns an independent game for search branches. The clone shares
// the immutable StaticMap and Hasher but owns its own state and a fresh,
// empty history: history deliberately does not propagate to clones.
func (g *Game) Clone() *Game {
	return &Game{
		m:       g.m,
		hasher:  g.hasher,
		initial: g.initial,
		cur:     g.cur.Copy(),
		history: NewUndoStack(),
		hash:    g.hash,
	}
}
