package app

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds the viewer window settings.
type Config struct {
	Scale    int
	TPS      int
	Rate     int
	HUDWidth int
	Paused   bool
}

// DefaultConfig returns the viewer defaults.
func DefaultConfig() Config {
	return Config{Scale: 8, TPS: 60, Rate: 4, HUDWidth: 260}
}

// Bind registers the viewer flags on fs, writing into c.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "Pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "Frames per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "Generations per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "Width of the parameter panel (0 hides it)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "Start paused")
}

// Validate checks that the settings can open a window.
func (c Config) Validate() error {
	switch {
	case c.Scale < 1:
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	case c.TPS < 1:
		return fmt.Errorf("tps must be at least 1, got %d", c.TPS)
	case c.Rate < 1:
		return fmt.Errorf("rate must be at least 1, got %d", c.Rate)
	case c.HUDWidth < 0:
		return fmt.Errorf("hud-width must not be negative, got %d", c.HUDWidth)
	}
	return nil
}

// WindowSize returns the window dimensions for a grid of w by h cells.
func (c Config) WindowSize(w, h int) (int, int) {
	return w*c.Scale + c.HUDWidth, h * c.Scale
}
