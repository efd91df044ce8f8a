package transposition

import (
	"math"
	"unsafe"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
)

const minSizePowerOf2 = 16

type boundedEntry[T any] struct {
	hash uint64
	data T
	used bool
}

// BoundedTable is a fixed-capacity table backed by a power-of-two array.
// The bucket is the hash's low bits; the full hash is stored and verified
// on lookup, so a bucket collision between different positions reads as a
// miss. Store overwrites whatever occupies the bucket. Memory use is fixed
// at creation, which is what a long-running solver wants instead of
// Table's unbounded map.
type BoundedTable[T any] struct {
	table    []boundedEntry[T]
	sizeMask uint64

	lookups    uint64
	hits       uint64
	collisions uint64
}

// NewBounded sizes the table to roughly fractionOfMemory of total system
// memory, rounded down to a power of two, with a floor of 2^16 entries.
func NewBounded[T any](fractionOfMemory float64) *BoundedTable[T] {
	var e boundedEntry[T]
	entrySize := int(unsafe.Sizeof(e))

	desired := fractionOfMemory * (float64(memory.TotalMemory()) / float64(entrySize))
	power := int(math.Log2(desired))
	if power < minSizePowerOf2 {
		power = minSizePowerOf2
	}
	numElems := 1 << power

	log.Info().
		Int("num-elems", numElems).
		Int("entry-size-bytes", entrySize).
		Int("estimated-total-bytes", numElems*entrySize).
		Msg("bounded-transposition-table-size")

	return &BoundedTable[T]{
		table:    make([]boundedEntry[T], numElems),
		sizeMask: uint64(numElems - 1),
	}
}

// Store saves data under hash, overwriting the bucket's occupant.
func (t *BoundedTable[T]) Store(hash uint64, data T) {
	t.table[hash&t.sizeMask] = boundedEntry[T]{hash: hash, data: data, used: true}
}

// Lookup returns the entry for hash. An occupied bucket holding a
// different full hash counts as a collision and reads as a miss.
func (t *BoundedTable[T]) Lookup(hash uint64) (T, bool) {
	t.lookups++
	e := t.table[hash&t.sizeMask]
	if !e.used || e.hash != hash {
		if e.used {
			t.collisions++
		}
		var zero T
		return zero, false
	}
	t.hits++
	return e.data, true
}

// Len returns the table capacity, not the occupancy.
func (t *BoundedTable[T]) Len() int { return len(t.table) }

// Collisions returns the number of lookups that found a different position
// in the bucket.
func (t *BoundedTable[T]) Collisions() uint64 { return t.collisions }

// Clear zeroes every bucket, keeping the allocation.
func (t *BoundedTable[T]) Clear() {
	clear(t.table)
	t.lookups = 0
	t.hits = 0
	t.collisions = 0
}
