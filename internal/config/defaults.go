package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/textgame.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Display: DisplayConfig{
			Width:  40,
			Height: 20,
		},
		Timing: TimingConfig{
			TickRate:        30,
			BlinkPeriod:     500 * time.Millisecond,
			BlinkTransition: 200 * time.Millisecond,
			MarqueeDuration: 6 * time.Second,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
