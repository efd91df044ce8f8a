// Package zobrist generates per-level random keys for incremental state
// hashing. https://en.wikipedia.org/wiki/Zobrist_hashing
//
// A state's hash is the XOR of the player key at the player's tile with the
// box key at every occupied tile. XOR being commutative and associative, the
// hash is independent of box enumeration order, and a move updates it in
// O(1) by XOR-ing out the vacated keys and XOR-ing in the new ones.
package zobrist

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

const bignum = 1<<63 - 2

// Hasher holds the per-level key tables. It is immutable after New and safe
// to share read-only across clones and goroutines.
type Hasher struct {
	playerKeys []uint64
	boxKeys    []uint64
}

// New creates key tables sized to the level's floor-tile count. The same
// (numFloorTiles, seed) pair always yields the same keys, so hashes are
// reproducible across runs. Keys are never zero.
func New(numFloorTiles int, seed uint64) *Hasher {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	rng := frand.NewCustom(key[:], 1024, 12)

	h := &Hasher{
		playerKeys: make([]uint64, numFloorTiles),
		boxKeys:    make([]uint64, numFloorTiles),
	}
	for i := 0; i < numFloorTiles; i++ {
		h.playerKeys[i] = rng.Uint64n(bignum) + 1
	}
	for i := 0; i < numFloorTiles; i++ {
		h.boxKeys[i] = rng.Uint64n(bignum) + 1
	}
	return h
}

// NumTiles returns the size of the key tables.
func (h *Hasher) NumTiles() int { return len(h.playerKeys) }

// Hash computes the full hash of a state from scratch.
func (h *Hasher) Hash(playerIdx int, boxIndices []int) uint64 {
	key := h.playerKeys[playerIdx]
	for _, b := range boxIndices {
		key ^= h.boxKeys[b]
	}
	return key
}

// AddWalk updates a hash for a player move with no box displaced. It is its
// own inverse, so undoing a walk applies the same update with the tile
// arguments swapped.
func (h *Hasher) AddWalk(key uint64, oldPlayer, newPlayer int) uint64 {
	return key ^ h.playerKeys[oldPlayer] ^ h.playerKeys[newPlayer]
}

// AddPush updates a hash for a push: the player and one box each change
// tiles. Like AddWalk it is an involution under argument swap.
func (h *Hasher) AddPush(key uint64, oldPlayer, newPlayer, boxFrom, boxTo int) uint64 {
	return key ^
		h.playerKeys[oldPlayer] ^ h.playerKeys[newPlayer] ^
		h.boxKeys[boxFrom] ^ h.boxKeys[boxTo]
}
