// Package config provides YAML-based configuration loading for the game.
package config

import (
	"time"

	"github.com/vovakirdan/tui-textgame/internal/core"
)

// Minimum panel size that fits the two option panels side by side.
const (
	MinPanelWidth  = 36
	MinPanelHeight = 20
)

// GameConfig contains all configuration for the game.
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Timing  TimingConfig  `yaml:"timing"`
}

// DisplayConfig defines the fixed-size panel the game is drawn in.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines animation timings.
type TimingConfig struct {
	TickRate        int           `yaml:"tick_rate"`
	BlinkPeriod     time.Duration `yaml:"blink_period"`
	BlinkTransition time.Duration `yaml:"blink_transition"`
	MarqueeDuration time.Duration `yaml:"marquee_duration"`
}

// Normalize replaces zero or out-of-range values with defaults.
func (c *GameConfig) Normalize() {
	def := DefaultGameConfig()

	if c.Display.Width <= 0 {
		c.Display.Width = def.Display.Width
	}
	if c.Display.Height <= 0 {
		c.Display.Height = def.Display.Height
	}
	c.Display.Width = max(c.Display.Width, MinPanelWidth)
	c.Display.Height = max(c.Display.Height, MinPanelHeight)

	if c.Timing.TickRate <= 0 {
		c.Timing.TickRate = def.Timing.TickRate
	}
	if c.Timing.BlinkPeriod <= 0 {
		c.Timing.BlinkPeriod = def.Timing.BlinkPeriod
	}
	if c.Timing.BlinkTransition < 0 {
		c.Timing.BlinkTransition = def.Timing.BlinkTransition
	}
	if c.Timing.MarqueeDuration <= 0 {
		c.Timing.MarqueeDuration = def.Timing.MarqueeDuration
	}
}

// Runtime builds the runtime config for a terminal of the given size.
func (c GameConfig) Runtime(screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:         screenW,
		ScreenH:         screenH,
		PanelW:          c.Display.Width,
		PanelH:          c.Display.Height,
		TickRate:        c.Timing.TickRate,
		BlinkPeriod:     c.Timing.BlinkPeriod,
		BlinkTransition: c.Timing.BlinkTransition,
		MarqueeDuration: c.Timing.MarqueeDuration,
	}
}
