package zobrist

import (
	"testing"

	"github.com/matryer/is"
)

func TestDeterministicAcrossInstances(t *testing.T) {
	is := is.New(t)
	a := New(64, 7)
	b := New(64, 7)
	c := New(64, 8)

	is.Equal(a.Hash(3, []int{10, 20}), b.Hash(3, []int{10, 20}))
	is.True(a.Hash(3, []int{10, 20}) != c.Hash(3, []int{10, 20}))
}

func TestBoxOrderDoesNotMatter(t *testing.T) {
	is := is.New(t)
	h := New(32, 0)

	is.Equal(h.Hash(0, []int{5, 9, 17}), h.Hash(0, []int{17, 5, 9}))
}

func TestDistinctStatesDistinctHashes(t *testing.T) {
	is := is.New(t)
	h := New(32, 0)

	base := h.Hash(4, []int{8, 12})
	is.True(base != h.Hash(5, []int{8, 12}))  // player moved
	is.True(base != h.Hash(4, []int{8, 13}))  // box moved
	is.True(base != h.Hash(8, []int{4, 12}))  // player and box swapped
	is.True(base != 0)
}

func TestAddWalkMatchesScratch(t *testing.T) {
	is := is.New(t)
	h := New(32, 0)
	boxes := []int{8, 12}

	key := h.Hash(4, boxes)
	key = h.AddWalk(key, 4, 5)
	is.Equal(key, h.Hash(5, boxes))

	// Walking back restores the original key.
	key = h.AddWalk(key, 5, 4)
	is.Equal(key, h.Hash(4, boxes))
}

func TestAddPushMatchesScratch(t *testing.T) {
	is := is.New(t)
	h := New(32, 0)

	key := h.Hash(4, []int{5, 12})
	key = h.AddPush(key, 4, 5, 5, 6)
	is.Equal(key, h.Hash(5, []int{6, 12}))

	// Applying the inverse push restores the original key.
	key = h.AddPush(key, 5, 4, 6, 5)
	is.Equal(key, h.Hash(4, []int{5, 12}))
}

func TestNumTiles(t *testing.T) {
	is := is.New(t)
	is.Equal(New(48, 0).NumTiles(), 48)
}

func TestKeysAreNonZero(t *testing.T) {
	is := is.New(t)
	h := New(16, 0)
	for i := 0; i < 16; i++ {
		is.True(h.Hash(i, nil) != 0)
	}
}
