// Package bitboard implements a level-sized bit-vector keyed by tile index.
// Bit i is set iff a box occupies the floor tile with index i. Sokoban levels
// routinely have more than 64 floor tiles, so the board is backed by a word
// slice rather than a single uint64.
package bitboard

import "math/bits"

const wordBits = 64

// Bitboard is a bit-vector over tile indices. The zero value of a given
// length is the empty board; all boards for one level must be created with
// the same bit length.
type Bitboard []uint64

// New creates an empty bitboard able to hold nbits tile indices.
func New(nbits int) Bitboard {
	return make(Bitboard, (nbits+wordBits-1)/wordBits)
}

// FromIndices creates a bitboard with the given tile indices set.
func FromIndices(nbits int, indices []int) Bitboard {
	bb := New(nbits)
	for _, idx := range indices {
		bb.Set(idx)
	}
	return bb
}

// Copy returns an independent copy.
func (bb Bitboard) Copy() Bitboard {
	c := make(Bitboard, len(bb))
	copy(c, bb)
	return c
}

// Has reports whether tile idx is occupied.
func (bb Bitboard) Has(idx int) bool {
	return bb[idx/wordBits]&(1<<(uint(idx)%wordBits)) != 0
}

// Set marks tile idx occupied.
func (bb Bitboard) Set(idx int) {
	bb[idx/wordBits] |= 1 << (uint(idx) % wordBits)
}

// Clear marks tile idx unoccupied.
func (bb Bitboard) Clear(idx int) {
	bb[idx/wordBits] &^= 1 << (uint(idx) % wordBits)
}

// MoveBit clears from and sets to in one operation.
func (bb Bitboard) MoveBit(from, to int) {
	bb.Clear(from)
	bb.Set(to)
}

// Count returns the number of set bits.
func (bb Bitboard) Count() int {
	n := 0
	for _, w := range bb {
		n += bits.OnesCount64(w)
	}
	return n
}

// CountAnd returns the popcount of bb AND other.
func (bb Bitboard) CountAnd(other Bitboard) int {
	n := 0
	for i, w := range bb {
		n += bits.OnesCount64(w & other[i])
	}
	return n
}

// SubsetOf reports whether every set bit of bb is also set in mask.
// This is the win test: all boxes within the goal mask.
func (bb Bitboard) SubsetOf(mask Bitboard) bool {
	for i, w := range bb {
		if w&^mask[i] != 0 {
			return false
		}
	}
	return true
}

// None reports whether no bits are set.
func (bb Bitboard) None() bool {
	for _, w := range bb {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two bitboards have identical contents.
func (bb Bitboard) Equal(other Bitboard) bool {
	if len(bb) != len(other) {
		return false
	}
	for i, w := range bb {
		if w != other[i] {
			return false
		}
	}
	return true
}

// Or sets bb to bb OR other in place.
func (bb Bitboard) Or(other Bitboard) {
	for i := range bb {
		bb[i] |= other[i]
	}
}

// And sets bb to bb AND other in place.
func (bb Bitboard) And(other Bitboard) {
	for i := range bb {
		bb[i] &= other[i]
	}
}

// AndNot sets bb to bb AND NOT other in place.
func (bb Bitboard) AndNot(other Bitboard) {
	for i := range bb {
		bb[i] &^= other[i]
	}
}

// Indices returns the set tile indices in ascending order.
func (bb Bitboard) Indices() []int {
	indices := make([]int, 0, bb.Count())
	bb.ForEach(func(idx int) {
		indices = append(indices, idx)
	})
	return indices
}

// ForEach calls fn for every set tile index in ascending order.
func (bb Bitboard) ForEach(fn func(idx int)) {
	for i, w := range bb {
		base := i * wordBits
		for w != 0 {
			fn(base + bits.TrailingZeros64(w))
			w &= w - 1
		}
	}
}
