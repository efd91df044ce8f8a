package transposition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableStoreLookup(t *testing.T) {
	tbl := New[int]()

	_, ok := tbl.Lookup(42)
	assert.False(t, ok)

	tbl.Store(42, 7)
	v, ok := tbl.Lookup(42)
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	tbl.Store(42, 9) // replace
	v, _ = tbl.Lookup(42)
	assert.Equal(t, 9, v)
	assert.Equal(t, 1, tbl.Len())
}

func TestTableStats(t *testing.T) {
	tbl := New[string]()
	tbl.Store(1, "a")

	tbl.Lookup(1)
	tbl.Lookup(2)
	tbl.Lookup(1)
	assert.Equal(t, uint64(3), tbl.Lookups())
	assert.Equal(t, uint64(2), tbl.Hits())
	assert.True(t, tbl.Contains(1))
	assert.False(t, tbl.Contains(2))
}

func TestTableClear(t *testing.T) {
	tbl := New[int]()
	tbl.Store(1, 1)
	tbl.Store(2, 2)
	tbl.Lookup(1)

	tbl.Clear()
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, uint64(0), tbl.Lookups())
	assert.Equal(t, uint64(0), tbl.Hits())
	assert.False(t, tbl.Contains(1))
}

func TestBoundedStoreLookup(t *testing.T) {
	tbl := NewBounded[uint32](0.000001)
	assert.GreaterOrEqual(t, tbl.Len(), 1<<minSizePowerOf2)

	hash := uint64(0xdeadbeefcafe)
	_, ok := tbl.Lookup(hash)
	assert.False(t, ok)

	tbl.Store(hash, 99)
	v, ok := tbl.Lookup(hash)
	assert.True(t, ok)
	assert.Equal(t, uint32(99), v)
}

func TestBoundedCollisionReadsAsMiss(t *testing.T) {
	tbl := NewBounded[int](0.000001)

	// Two hashes landing in the same bucket: same low bits, different
	// high bits. The second store evicts the first; looking up the first
	// afterwards is a recorded collision.
	a := uint64(5)
	b := a + (tbl.sizeMask + 1)

	tbl.Store(a, 1)
	tbl.Store(b, 2)

	_, ok := tbl.Lookup(a)
	assert.False(t, ok)
	assert.Equal(t, uint64(1), tbl.Collisions())

	v, ok := tbl.Lookup(b)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestBoundedClear(t *testing.T) {
	tbl := NewBounded[int](0.000001)
	tbl.Store(3, 3)
	tbl.Lookup(3)

	tbl.Clear()
	_, ok := tbl.Lookup(3)
	assert.False(t, ok)
	assert.Equal(t, uint64(0), tbl.Collisions())
}
