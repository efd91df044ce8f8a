package movegen

import (
	"testing"

	"github.com/matryer/is"

	"github.com/woodgrain/sokoban/bitboard"
	"github.com/woodgrain/sokoban/board"
	"github.com/woodgrain/sokoban/zobrist"
)

// Tile indices for microLevel: 0 player, 1 box, 2 goal, all on row 1.
const microLevel = `#####
#@$.#
#####`

// roomLevel floor tiles, by index:
//
//	row 1: 0 1 2
//	row 2: 3 4 5 6 7   (box on 4, goal on 6)
//	row 3: 8 9 10
const roomLevel = `#######
#@  ###
# $ . #
###   #
#######`

func setup(t *testing.T, level string) (*board.StaticMap, board.TileIndex, bitboard.Bitboard) {
	t.Helper()
	parsed, err := board.ParseLevel(level)
	if err != nil {
		t.Fatal(err)
	}
	m := board.NewStaticMap(parsed)
	player := m.TileIndexAt(parsed.Player.Row, parsed.Player.Col)
	boxes := bitboard.New(m.NumFloorTiles())
	for _, p := range parsed.Boxes {
		boxes.Set(m.TileIndexAt(p.Row, p.Col))
	}
	return m, player, boxes
}

func TestReachableBlockedByBox(t *testing.T) {
	is := is.New(t)
	m, player, boxes := setup(t, microLevel)

	r := Reachable(m, player, boxes)
	is.Equal(r.Indices(), []int{0})
}

func TestReachableRoom(t *testing.T) {
	is := is.New(t)
	m, player, boxes := setup(t, roomLevel)

	// The box at tile 4 splits the room: from tile 0 the player can
	// still walk around it through the bottom row.
	r := Reachable(m, player, boxes)
	is.Equal(r.Indices(), []int{0, 1, 2, 3, 5, 6, 7, 8, 9, 10})
}

func TestReachableAfterRemovingBox(t *testing.T) {
	is := is.New(t)
	m, player, _ := setup(t, roomLevel)

	r := Reachable(m, player, bitboard.New(m.NumFloorTiles()))
	is.Equal(r.Count(), m.NumFloorTiles())
}

func TestLegalPushesMicro(t *testing.T) {
	is := is.New(t)
	m, player, boxes := setup(t, microLevel)

	pushes := LegalPushes(m, player, boxes)
	is.Equal(pushes, []Push{{Box: 1, Dir: board.Right}})
}

func TestLegalPushesRoom(t *testing.T) {
	is := is.New(t)
	m, player, boxes := setup(t, roomLevel)

	// The wall below the box rules out vertical pushes. Left needs the
	// player at tile 5, reached around the bottom row; Right needs tile
	// 3, one step down from the start.
	pushes := LegalPushes(m, player, boxes)
	is.Equal(pushes, []Push{
		{Box: 4, Dir: board.Left},
		{Box: 4, Dir: board.Right},
	})
}

func TestLegalPushesOrdering(t *testing.T) {
	is := is.New(t)
	// Two boxes in an open room; pushes must come out ascending by box
	// index, directions in enum order within each box.
	level := `######
#@   #
# $$ #
#  ..#
######`
	m, player, boxes := setup(t, level)

	pushes := LegalPushes(m, player, boxes)
	for i := 1; i < len(pushes); i++ {
		prev, cur := pushes[i-1], pushes[i]
		is.True(prev.Box < cur.Box ||
			(prev.Box == cur.Box && prev.Dir < cur.Dir))
	}
}

func TestPushString(t *testing.T) {
	is := is.New(t)
	p := Push{Box: 4, Dir: board.Left}
	is.Equal(p.String(), "push 4 left")
}

func TestPerftMicro(t *testing.T) {
	is := is.New(t)
	m, player, boxes := setup(t, microLevel)

	// One push solves the level; the solved position has no further
	// pushes (the box sits against the wall).
	is.Equal(Perft(m, player, boxes, 1), uint64(1))
	is.Equal(Perft(m, player, boxes, 2), uint64(0))
	is.Equal(Perft(m, player, boxes, 0), uint64(1))
}

func TestPerftRoomDepthOne(t *testing.T) {
	is := is.New(t)
	m, player, boxes := setup(t, roomLevel)

	is.Equal(Perft(m, player, boxes, 1), uint64(2))
}

func TestPerftLeavesInputUntouched(t *testing.T) {
	is := is.New(t)
	m, player, boxes := setup(t, roomLevel)
	before := boxes.Copy()

	Perft(m, player, boxes, 3)
	is.True(boxes.Equal(before))
}

func TestUniqueStatesMicro(t *testing.T) {
	is := is.New(t)
	m, player, boxes := setup(t, microLevel)
	z := zobrist.New(m.NumFloorTiles(), 0)

	// Depth 0: just the start. Depth 1: start plus the solved position.
	is.Equal(UniqueStates(m, z, player, boxes, 0), 1)
	is.Equal(UniqueStates(m, z, player, boxes, 1), 2)
	is.Equal(UniqueStates(m, z, player, boxes, 2), 2)
}
