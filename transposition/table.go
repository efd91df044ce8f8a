// Package transposition provides hash-keyed stores for solver state
// deduplication. Table grows without bound and suits a single search run;
// BoundedTable is a fixed-size power-of-two array sized from system memory
// for long-running searches, overwriting on bucket collision.
package transposition

import (
	"github.com/rs/zerolog/log"
)

// Table maps 64-bit Zobrist hashes to solver-supplied payloads. It is a
// passive store: no eviction, no locking. A lookup miss is a normal
// outcome, not a failure.
type Table[T any] struct {
	table   map[uint64]T
	lookups uint64
	hits    uint64
}

// New returns an empty table.
func New[T any]() *Table[T] {
	return &Table[T]{table: make(map[uint64]T)}
}

// Store saves data under hash, replacing any previous entry.
func (t *Table[T]) Store(hash uint64, data T) {
	t.table[hash] = data
}

// Lookup returns the entry for hash, with ok=false on a miss.
func (t *Table[T]) Lookup(hash uint64) (T, bool) {
	t.lookups++
	data, ok := t.table[hash]
	if ok {
		t.hits++
	}
	return data, ok
}

// Contains reports whether hash is in the table.
func (t *Table[T]) Contains(hash uint64) bool {
	_, ok := t.table[hash]
	return ok
}

// Len returns the number of entries.
func (t *Table[T]) Len() int { return len(t.table) }

// Lookups returns the number of lookups since creation or the last Clear.
func (t *Table[T]) Lookups() uint64 { return t.lookups }

// Hits returns the number of successful lookups.
func (t *Table[T]) Hits() uint64 { return t.hits }

// Clear removes all entries and logs the table's hit statistics.
func (t *Table[T]) Clear() {
	log.Debug().
		Int("entries", len(t.table)).
		Uint64("lookups", t.lookups).
		Uint64("hits", t.hits).
		Msg("clearing transposition table")
	t.table = make(map[uint64]T)
	t.lookups = 0
	t.hits = 0
}
