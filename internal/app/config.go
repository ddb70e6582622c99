package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Grid  int
	Scale int
	TPS   int
	Rate  int
	Seed  int64
}

// NewConfig returns a Config populated with the classic setup: a 250-cell
// board at 4 pixels per cell in a 1000-pixel window.
func NewConfig() *Config {
	return &Config{Grid: 250, Scale: 4, TPS: 60, Rate: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Grid, "grid", c.Grid, "board side length in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of one cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "display ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "simulation generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial random soup")
}

// ResolveSeed replaces the default seed with a clock-derived one when fs did
// not set -seed explicitly. Must be called after fs has been parsed.
func (c *Config) ResolveSeed(fs *flag.FlagSet) {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	if !set {
		c.Seed = time.Now().UnixNano()
	}
}
