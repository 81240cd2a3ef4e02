package seating

import "strconv"

// Config controls world construction for the registry factories.
type Config struct {
	Width  int
	Height int
	Mode   Mode

	// FloorChance is the probability a generated cell is floor rather
	// than a seat.
	FloorChance float64

	// Layout, when non-empty, seeds the world from parsed text instead
	// of a generated scatter. It must already be valid.
	Layout string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       96,
		Height:      64,
		Mode:        ModeAdjacent,
		FloorChance: 0.12,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
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
	if v, ok := cfg["floor_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.FloorChance = parsed
		}
	}
	if v, ok := cfg["layout"]; ok {
		c.Layout = v
	}
	return c
}

// NewWithConfig builds a world from the configuration. A config Layout that
// fails to parse is ignored in favor of a generated world; callers wanting
// the error should use FromText.
func NewWithConfig(c Config) *World {
	if c.Layout != "" {
		if w, err := FromText(c.Layout, c.Mode); err == nil {
			return w
		}
	}
	w := New(c.Width, c.Height, c.Mode)
	if c.FloorChance >= 0 && c.FloorChance <= 1 {
		w.floorChance = c.FloorChance
	}
	return w
}
