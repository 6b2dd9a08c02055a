// Package blink animates the prompt cursor: a boolean toggled on a fixed
// period whose visible opacity eases between states instead of snapping.
package blink

import "time"

// VisibleOpacity is the opacity of a fully shown cursor glyph.
const VisibleOpacity = 0.8

// Cursor tracks the eased opacity of the blinking cursor.
type Cursor struct {
	visible    bool
	transition time.Duration

	opacity float64
	from    float64
	to      float64
	elapsed time.Duration
}

// New creates a visible cursor whose state changes ease over transition.
func New(transition time.Duration) *Cursor {
	return &Cursor{
		visible:    true,
		transition: transition,
		opacity:    VisibleOpacity,
		from:       VisibleOpacity,
		to:         VisibleOpacity,
		elapsed:    transition,
	}
}

// Set changes the target visibility and starts a transition from the
// current opacity. Setting the current value again is a no-op.
func (c *Cursor) Set(visible bool) {
	if visible == c.visible {
		return
	}
	c.visible = visible
	c.from = c.opacity
	c.to = 0
	if visible {
		c.to = VisibleOpacity
	}
	c.elapsed = 0
	if c.transition <= 0 {
		c.opacity = c.to
	}
}

// Toggle flips visibility and returns the new value.
func (c *Cursor) Toggle() bool {
	c.Set(!c.visible)
	return c.visible
}

// Advance moves the current transition forward by dt.
func (c *Cursor) Advance(dt time.Duration) {
	if c.transition <= 0 || c.elapsed >= c.transition {
		c.opacity = c.to
		return
	}
	c.elapsed += dt
	if c.elapsed > c.transition {
		c.elapsed = c.transition
	}
	t := float64(c.elapsed) / float64(c.transition)
	c.opacity = c.from + (c.to-c.from)*easeInOutQuad(t)
}

// Visible returns the target visibility.
func (c *Cursor) Visible() bool {
	return c.visible
}

// Opacity returns the current eased opacity in [0, VisibleOpacity].
func (c *Cursor) Opacity() float64 {
	return c.opacity
}

// Transitioning reports whether a fade is still in progress.
func (c *Cursor) Transitioning() bool {
	return c.transition > 0 && c.elapsed < c.transition
}

// easeInOutQuad accelerates through the first half and decelerates
// through the second.
func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}
