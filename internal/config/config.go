// Package config provides YAML-based configuration loading for the
// goldtris platform: gravity timing and display preferences.
package config

import "time"

// Config contains all tunable settings for the game.
type Config struct {
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
}

// TimingConfig defines the gravity schedule. The actual per-level
// interval is base_interval_ms * speed_factor^(level-1), recomputed by
// the platform whenever the level changes.
type TimingConfig struct {
	BaseIntervalMs int     `yaml:"base_interval_ms"`
	SpeedFactor    float64 `yaml:"speed_factor"`
}

// DisplayConfig defines optional presentation features.
type DisplayConfig struct {
	ShowNext  bool `yaml:"show_next"`  // next-piece preview box
	ShowGhost bool `yaml:"show_ghost"` // drop-position ghost outline
}

// BaseInterval returns the level-1 gravity interval as a duration.
func (c Config) BaseInterval() time.Duration {
	return time.Duration(c.Timing.BaseIntervalMs) * time.Millisecond
}

// Normalize replaces out-of-range values with defaults so a sparse or
// hand-edited YAML file cannot stall the gravity scheduler.
func (c *Config) Normalize() {
	def := Default()
	if c.Timing.BaseIntervalMs <= 0 {
		c.Timing.BaseIntervalMs = def.Timing.BaseIntervalMs
	}
	if c.Timing.SpeedFactor <= 0 || c.Timing.SpeedFactor > 1 {
		c.Timing.SpeedFactor = def.Timing.SpeedFactor
	}
}
