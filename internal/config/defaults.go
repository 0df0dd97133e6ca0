package config

import (
	_ "embed"
)

//go:embed defaults/goldtris.yaml
var defaultYAML []byte

// Default returns the built-in configuration: classic 800ms gravity at
// level 1, speeding up by 10% per level, with preview and ghost enabled.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			BaseIntervalMs: 800,
			SpeedFactor:    0.9,
		},
		Display: DisplayConfig{
			ShowNext:  true,
			ShowGhost: true,
		},
	}
}
