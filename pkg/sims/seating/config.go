package seating

import "strconv"

// Config controls the interactive seating simulation.
type Config struct {
	// Input is a layout file path. When empty a random layout is generated.
	Input string

	Policy Policy
	Engine EngineKind
	// Threshold overrides the policy's default when non-zero.
	Threshold uint8

	// Width, Height and Density shape generated layouts.
	Width   int
	Height  int
	Density float64

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Policy:  Adjacent,
		Engine:  EngineGraph,
		Width:   96,
		Height:  96,
		Density: 0.7,
		Seed:    11,
	}
}

// Rule returns the effective rule for the configuration.
func (c Config) Rule() Rule {
	r := DefaultRule(c.Policy)
	if c.Threshold != 0 {
		r.Threshold = c.Threshold
	}
	return r
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["input"]; ok {
		c.Input = v
	}
	if v, ok := cfg["policy"]; ok {
		if parsed, err := ParsePolicy(v); err == nil {
			c.Policy = parsed
		}
	}
	if v, ok := cfg["engine"]; ok {
		if parsed, err := ParseEngine(v); err == nil {
			c.Engine = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= 8 {
			c.Threshold = uint8(parsed)
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
