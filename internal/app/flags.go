package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim         string
	Input       string
	Width       int
	Height      int
	Scale       int
	TPS         int
	Seed        int64
	FloorChance float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "seating-adjacent",
		Width:       96,
		Height:      64,
		Scale:       8,
		TPS:         10,
		Seed:        42,
		FloorChance: 0.12,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "rule mode to run (seating-adjacent or seating-sight)")
	fs.StringVar(&c.Input, "input", c.Input, "seating layout file; empty generates a random layout")
	fs.IntVar(&c.Width, "width", c.Width, "generated layout width")
	fs.IntVar(&c.Height, "height", c.Height, "generated layout height")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generated layouts")
	fs.Float64Var(&c.FloorChance, "floor", c.FloorChance, "floor probability for generated layouts")
}
