package game

import (
	"testing"

	"github.com/matryer/is"

	"github.com/woodgrain/sokoban/board"
)

func mustGame(t *testing.T, level string) *Game {
	t.Helper()
	g, err := NewGame(level)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestMicroLevelAcceptance(t *testing.T) {
	is := is.New(t)
	g := mustGame(t, microLevel)

	is.Equal(g.Width(), 5)
	is.Equal(g.Height(), 3)
	is.Equal(g.NumBoxes(), 1)
	is.True(!g.IsSolved())

	// The box blocks everything: the player can only reach its own tile.
	is.Equal(g.Reachable(), []int{0})

	// Exactly one legal push: the box at tile 1, rightward.
	pushes := g.LegalPushes()
	is.Equal(len(pushes), 1)
	is.Equal(pushes[0].Box, 1)
	is.Equal(pushes[0].Dir, board.Right)

	// The single push wins immediately.
	is.Equal(g.Move(board.Right), Win)
	is.True(g.IsSolved())
	is.Equal(g.MoveCount(), 1)
	is.Equal(g.PushCount(), 1)
	is.Equal(g.BoxesOnGoals(), 1)
}

func TestBlockedMoveLeavesGameUntouched(t *testing.T) {
	is := is.New(t)
	g := mustGame(t, microLevel)
	before := g.StateHash()

	is.Equal(g.Move(board.Up), BlockedWall)
	is.Equal(g.MoveCount(), 0)
	is.Equal(g.StateHash(), before)
	is.Equal(g.PlayerPosition(), board.Position{Row: 1, Col: 1})
}

func TestCellPredicates(t *testing.T) {
	is := is.New(t)
	g := mustGame(t, microLevel)

	is.True(g.IsWall(0, 0))
	is.True(g.IsPlayer(1, 1))
	is.True(g.IsBox(1, 2))
	is.True(g.IsGoal(1, 3))
	is.True(g.IsFloor(1, 3))
	is.True(!g.IsBox(0, 0)) // wall cell holds no box
	is.True(!g.IsPlayer(1, 2))
}

func TestPositionsQueries(t *testing.T) {
	is := is.New(t)
	g := mustGame(t, roomLevel)

	is.Equal(g.PlayerPosition(), board.Position{Row: 1, Col: 1})
	is.Equal(g.BoxPositions(), []board.Position{{Row: 2, Col: 2}})
	is.Equal(g.GoalPositions(), []board.Position{{Row: 2, Col: 4}})
}

func TestIncrementalHashMatchesScratch(t *testing.T) {
	is := is.New(t)
	g := mustGame(t, roomLevel)

	check := func() {
		t.Helper()
		player, boxes := g.CanonicalState()
		is.Equal(g.StateHash(), g.Hasher().Hash(player, boxes))
	}

	check()
	for _, d := range []board.Direction{board.Down, board.Right, board.Right} {
		is.True(g.Move(d).Success())
		check()
	}
	g.Undo()
	check()
	g.Redo()
	check()
}

func TestUndoRedoFacade(t *testing.T) {
	is := is.New(t)
	g := mustGame(t, roomLevel)

	is.True(!g.Undo()) // nothing to undo
	is.True(!g.Redo()) // nothing to redo

	g.Move(board.Down)
	g.Move(board.Right) // push
	hashAfter := g.StateHash()
	playerAfter, boxesAfter := g.CanonicalState()

	is.True(g.Undo())
	is.True(g.Undo())
	is.Equal(g.PlayerPosition(), board.Position{Row: 1, Col: 1})
	is.Equal(g.MoveCount(), 0)
	is.True(g.CanRedo())

	is.True(g.Redo())
	is.True(g.Redo())
	is.Equal(g.StateHash(), hashAfter)
	player, boxes := g.CanonicalState()
	is.Equal(player, playerAfter)
	is.Equal(boxes, boxesAfter)
}

func TestNewMoveInvalidatesRedo(t *testing.T) {
	is := is.New(t)
	g := mustGame(t, roomLevel)

	g.Move(board.Down)
	g.Undo()
	is.True(g.CanRedo())

	g.Move(board.Right)
	is.True(!g.CanRedo())
}

func TestReset(t *testing.T) {
	is := is.New(t)
	g := mustGame(t, roomLevel)
	initialHash := g.StateHash()

	g.Move(board.Down)
	g.Move(board.Right)
	g.Undo()
	g.Reset()

	is.Equal(g.MoveCount(), 0)
	is.Equal(g.PushCount(), 0)
	is.True(!g.CanUndo())
	is.True(!g.CanRedo())
	is.Equal(g.StateHash(), initialHash)
	is.Equal(g.PlayerPosition(), board.Position{Row: 1, Col: 1})
	is.Equal(g.BoxPositions(), []board.Position{{Row: 2, Col: 2}})
}

func TestCloneSharingContract(t *testing.T) {
	is := is.New(t)
	g := mustGame(t, roomLevel)
	g.Move(board.Down)

	c := g.Clone()

	// Immutable parts are shared by identity.
	is.True(g.StaticMap() == c.StaticMap())
	is.True(g.Hasher() == c.Hasher())

	// State is equal but independent; history does not propagate.
	is.Equal(c.StateHash(), g.StateHash())
	is.Equal(c.MoveCount(), 0)
	is.True(!c.CanUndo())

	c.Move(board.Right)
	is.Equal(g.PlayerPosition(), board.Position{Row: 2, Col: 1})
	is.True(c.StateHash() != g.StateHash())
	is.Equal(g.MoveCount(), 1)
	is.Equal(c.MoveCount(), 1)
}

func TestSeededHashesAreReproducible(t *testing.T) {
	is := is.New(t)
	a, err := NewGameSeeded(roomLevel, 42)
	is.NoErr(err)
	b, err := NewGameSeeded(roomLevel, 42)
	is.NoErr(err)
	c, err := NewGameSeeded(roomLevel, 43)
	is.NoErr(err)

	is.Equal(a.StateHash(), b.StateHash())
	is.True(a.StateHash() != c.StateHash())
}

func TestMoveHistory(t *testing.T) {
	is := is.New(t)
	g := mustGame(t, roomLevel)
	g.Move(board.Down)
	g.Move(board.Right)

	h := g.MoveHistory()
	is.Equal(h, []MoveRecord{
		{Dir: board.Down, Push: false},
		{Dir: board.Right, Push: true},
	})
}
