package core

import "time"

// RuntimeConfig carries the settings a game screen is mounted with.
type RuntimeConfig struct {
	ScreenW int // Terminal width in cells
	ScreenH int // Terminal height in cells

	PanelW int // Width of the fixed-size game panel
	PanelH int // Height of the fixed-size game panel

	TickRate        int           // Animation frames per second
	BlinkPeriod     time.Duration // Cursor toggle period
	BlinkTransition time.Duration // Cursor fade duration
	MarqueeDuration time.Duration // Full traversal time of a description
}

// DefaultConfig returns a RuntimeConfig with the stock timings.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:         80,
		ScreenH:         24,
		PanelW:          40,
		PanelH:          20,
		TickRate:        30,
		BlinkPeriod:     500 * time.Millisecond,
		BlinkTransition: 200 * time.Millisecond,
		MarqueeDuration: 6 * time.Second,
	}
}

// FrameInterval returns the duration of one animation frame.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}
