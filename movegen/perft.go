package movegen

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/woodgrain/sokoban/bitboard"
	"github.com/woodgrain/sokoban/board"
	"github.com/woodgrain/sokoban/transposition"
	"github.com/woodgrain/sokoban/zobrist"
)

// Perft counts the leaves of the push tree to the given depth, the usual
// sanity benchmark for a move generator. Root pushes are explored in
// parallel, one branch per goroutine, each on its own copy of the box
// occupancy; the static map is shared read-only.
func Perft(m *board.StaticMap, playerIdx board.TileIndex, boxes bitboard.Bitboard, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pushes := LegalPushes(m, playerIdx, boxes)

	var total atomic.Uint64
	g := new(errgroup.Group)
	for _, p := range pushes {
		p := p
		g.Go(func() error {
			branch := boxes.Copy()
			branch.MoveBit(p.Box, m.Neighbor(p.Box, p.Dir))
			total.Add(perft(m, p.Box, branch, depth-1))
			return nil
		})
	}
	// The branches never fail; Wait is only a join point.
	_ = g.Wait()
	return total.Load()
}

func perft(m *board.StaticMap, playerIdx board.TileIndex, boxes bitboard.Bitboard, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, p := range LegalPushes(m, playerIdx, boxes) {
		to := m.Neighbor(p.Box, p.Dir)
		boxes.MoveBit(p.Box, to)
		// After a push the player stands on the box's old tile.
		nodes += perft(m, p.Box, boxes, depth-1)
		boxes.MoveBit(to, p.Box)
	}
	return nodes
}

// UniqueStates counts the distinct (player, boxes) states reachable within
// the given number of pushes, deduplicated through a transposition table
// keyed by Zobrist hash. A state already seen with at least as much
// remaining depth is not re-expanded; one seen with less remaining depth
// is, since deeper successors may still be new.
func UniqueStates(m *board.StaticMap, z *zobrist.Hasher, playerIdx board.TileIndex, boxes bitboard.Bitboard, depth int) int {
	seen := transposition.New[int]()
	countStates(m, z, playerIdx, boxes.Copy(), depth, seen)
	return seen.Len()
}

func countStates(m *board.StaticMap, z *zobrist.Hasher, playerIdx board.TileIndex, boxes bitboard.Bitboard, depth int, seen *transposition.Table[int]) {
	key := z.Hash(playerIdx, boxes.Indices())
	if remaining, ok := seen.Lookup(key); ok && remaining >= depth {
		return
	}
	seen.Store(key, depth)
	if depth == 0 {
		return
	}
	for _, p := range LegalPushes(m, playerIdx, boxes) {
		to := m.Neighbor(p.Box, p.Dir)
		boxes.MoveBit(p.Box, to)
		countStates(m, z, p.Box, boxes, depth-1, seen)
		boxes.MoveBit(to, p.Box)
	}
}
