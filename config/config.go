package config

import "github.com/namsral/flag"

type Config struct {
	LevelsPath        string
	DefaultCollection string
	ZobristSeed       uint64
	PerftDepthLimit   int
	Debug             bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("sokoban", flag.ContinueOnError)
	fs.StringVar(&c.LevelsPath, "levels-path", "./levels", "directory holding level collection files")
	fs.StringVar(&c.DefaultCollection, "default-collection", "", "collection file to load on startup")
	fs.Uint64Var(&c.ZobristSeed, "zobrist-seed", 0, "seed for the per-level zobrist key tables")
	fs.IntVar(&c.PerftDepthLimit, "perft-depth-limit", 12, "maximum depth accepted by the perft command")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	err := fs.Parse(args)
	return err
}
