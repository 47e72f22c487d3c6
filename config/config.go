package config

import "github.com/namsral/flag"

type Config struct {
	BoardWidth    int
	BoardHeight   int
	WeightsPath   string
	AutoplayGames int
	Threads       int
	RandSeed      uint64
	Debug         bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("tetron", flag.ContinueOnError)
	fs.IntVar(&c.BoardWidth, "board-width", 10, "number of columns in the playfield")
	fs.IntVar(&c.BoardHeight, "board-height", 20, "number of rows in the playfield")
	fs.StringVar(&c.WeightsPath, "weights-path", "", "optional YAML file with evaluator weights")
	fs.IntVar(&c.AutoplayGames, "autoplay-games", 0, "if nonzero, play this many bot games and exit")
	fs.IntVar(&c.Threads, "threads", 1, "worker goroutines for autoplay")
	fs.Uint64Var(&c.RandSeed, "seed", 0, "seed for the piece bag; 0 seeds from the OS")
	fs.BoolVar(&c.Debug, "debug", false, "debug logging")
	err := fs.Parse(args)
	return err
}

// DefaultConfig returns the configuration used when no flags are given.
// Tests rely on it.
func DefaultConfig() Config {
	return Config{
		BoardWidth:  10,
		BoardHeight: 20,
		Threads:     1,
	}
}
