package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Rule    int
	Width   int
	Height  int
	Scale   int
	SPS     int
	Speed   int
	Palette string
	Pattern string
	Density float64
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rule:    110,
		Width:   256,
		Height:  256,
		Scale:   3,
		SPS:     60,
		Speed:   1,
		Palette: "neon",
		Pattern: "single",
		Density: 0.5,
		Seed:    42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram rule number (0-255)")
	fs.IntVar(&c.Width, "w", c.Width, "cells per generation row")
	fs.IntVar(&c.Height, "h", c.Height, "generations kept on screen")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.SPS, "sps", c.SPS, "automaton steps per second")
	fs.IntVar(&c.Speed, "speed", c.Speed, "generations computed per step")
	fs.StringVar(&c.Palette, "palette", c.Palette, "color palette name")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial condition: single or random")
	fs.Float64Var(&c.Density, "density", c.Density, "active-cell probability for random seeding")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "source seed for random seeding")
}
