package movegen

import (
	"fmt"

	"github.com/woodgrain/sokoban/bitboard"
	"github.com/woodgrain/sokoban/board"
)

// Push is one legal box push: the box's tile index and the direction it
// moves. After performing it, the player stands on Box and the box on the
// neighbor of Box in Dir.
type Push struct {
	Box board.TileIndex
	Dir board.Direction
}

func (p Push) String() string {
	return fmt.Sprintf("push %d %s", p.Box, p.Dir)
}

// LegalPushes enumerates every push the player can perform from the given
// occupancy. A push of a box in direction d is legal iff the player can
// reach the tile on the opposite side of the box, and the tile beyond the
// box in d exists and holds no box. The result is ordered by ascending box
// index, then direction enumeration order, so solver behavior is
// reproducible.
func LegalPushes(m *board.StaticMap, playerIdx board.TileIndex, boxes bitboard.Bitboard) []Push {
	reachable := Reachable(m, playerIdx, boxes)

	var pushes []Push
	boxes.ForEach(func(boxIdx int) {
		for _, d := range board.Directions {
			from := m.Neighbor(boxIdx, d.Opposite())
			if from == board.NoTile || !reachable.Has(from) {
				continue
			}
			to := m.Neighbor(boxIdx, d)
			if to == board.NoTile || boxes.Has(to) {
				continue
			}
			pushes = append(pushes, Push{Box: boxIdx, Dir: d})
		}
	})
	return pushes
}
