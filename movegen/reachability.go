// Package movegen computes player reachability and enumerates legal pushes:
// the push-centric API a solver consumes. Everything here is a pure
// function of the static map and the (player, boxes) inputs.
package movegen

import (
	"github.com/woodgrain/sokoban/bitboard"
	"github.com/woodgrain/sokoban/board"
)

// Reachable flood-fills from the player's tile over the passable mask
// (floor minus box occupancy), expanding a frontier until fixed point. The
// result has a bit set for every tile the player can walk to without
// displacing a box. Termination is guaranteed: the reachable set only grows
// and is bounded by the floor mask.
func Reachable(m *board.StaticMap, playerIdx board.TileIndex, boxes bitboard.Bitboard) bitboard.Bitboard {
	passable := m.FloorMask().Copy()
	passable.AndNot(boxes)

	reachable := bitboard.New(m.NumFloorTiles())
	reachable.Set(playerIdx)
	frontier := reachable.Copy()

	for !frontier.None() {
		next := bitboard.New(m.NumFloorTiles())
		frontier.ForEach(func(idx int) {
			for _, d := range board.Directions {
				n := m.Neighbor(idx, d)
				if n == board.NoTile {
					continue
				}
				if passable.Has(n) && !reachable.Has(n) {
					reachable.Set(n)
					next.Set(n)
				}
			}
		})
		frontier = next
	}
	return reachable
}
