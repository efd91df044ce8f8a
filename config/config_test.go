package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	var c Config
	is.NoErr(c.Load(nil))

	is.Equal(c.LevelsPath, "./levels")
	is.Equal(c.DefaultCollection, "")
	is.Equal(c.ZobristSeed, uint64(0))
	is.Equal(c.PerftDepthLimit, 12)
	is.Equal(c.Debug, false)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	var c Config
	is.NoErr(c.Load([]string{
		"-levels-path", "/data/levels",
		"-default-collection", "starter.xsb",
		"-zobrist-seed", "42",
		"-debug",
	}))

	is.Equal(c.LevelsPath, "/data/levels")
	is.Equal(c.DefaultCollection, "starter.xsb")
	is.Equal(c.ZobristSeed, uint64(42))
	is.True(c.Debug)
}
