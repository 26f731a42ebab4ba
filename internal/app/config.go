package app

import "flag"

// Config represents the command-line parameters of the arcade demo.
type Config struct {
	// Width and Height give the logical screen size in pixels.
	Width  int
	Height int
	// TPS is the fixed logic rate in ticks per second.
	TPS int
	// Seed drives the scene layout and every in-game random draw.
	Seed int64
}

// NewConfig returns a configuration populated with the demo defaults.
func NewConfig() *Config {
	return &Config{
		Width:  960,
		Height: 640,
		TPS:    60,
		Seed:   42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "logic ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the scene layout and RNG")
}
