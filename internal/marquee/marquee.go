// Package marquee scrolls a single line of text from right to left through
// a fixed-width viewport, looping forever.
package marquee

import (
	"math"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// Font selects the text size, which decides the row height of the marquee.
type Font int

const (
	FontFootnote Font = iota
	FontCaption
)

// Height returns the number of screen rows the marquee occupies.
// Footnote text gets one row of leading below it, caption text none.
func (f Font) Height() int {
	if f == FontFootnote {
		return 2
	}
	return 1
}

// Marquee holds the animation state of one mounted line of text.
// Create a new Marquee for each text; a Marquee never re-measures.
type Marquee struct {
	text     string
	font     Font
	duration time.Duration

	textWidth      int
	containerWidth int
	offset         float64
	elapsed        time.Duration
	started        bool
}

// New creates an unstarted marquee. duration is the time one full
// traversal takes, from just right of the viewport to fully off its left.
func New(text string, font Font, duration time.Duration) *Marquee {
	return &Marquee{
		text:     text,
		font:     font,
		duration: duration,
	}
}

// Layout is called on every layout pass with the current viewport width.
// The first call measures the text and viewport and starts the loop. Later
// calls are ignored. It reports whether this call started the animation.
func (m *Marquee) Layout(containerWidth int) bool {
	if m.started {
		return false
	}
	m.started = true
	m.textWidth = runewidth.StringWidth(m.text)
	m.containerWidth = max(containerWidth, 0)
	m.elapsed = 0
	m.offset = m.StartOffset()
	return true
}

// Advance moves the animation forward by dt. When a traversal completes,
// the next one begins immediately from the start offset.
func (m *Marquee) Advance(dt time.Duration) {
	if !m.started || m.duration <= 0 || dt <= 0 {
		return
	}
	m.elapsed = (m.elapsed + dt) % m.duration
	progress := float64(m.elapsed) / float64(m.duration)
	start, end := m.StartOffset(), m.EndOffset()
	m.offset = start + (end-start)*progress
}

// StartOffset is the offset a traversal begins at: the viewport width.
func (m *Marquee) StartOffset() float64 {
	return float64(m.containerWidth)
}

// EndOffset is the offset a traversal ends at: minus the text width.
func (m *Marquee) EndOffset() float64 {
	return -float64(m.textWidth)
}

// Offset returns the current horizontal offset of the text's left edge
// relative to the viewport's left edge, in cells.
func (m *Marquee) Offset() float64 {
	return m.offset
}

// Started reports whether Layout has run.
func (m *Marquee) Started() bool {
	return m.started
}

// TextWidth returns the measured text width in cells.
func (m *Marquee) TextWidth() int {
	return m.textWidth
}

// ContainerWidth returns the measured viewport width in cells.
func (m *Marquee) ContainerWidth() int {
	return m.containerWidth
}

// Text returns the text being scrolled.
func (m *Marquee) Text() string {
	return m.text
}

// Font returns the font the marquee was mounted with.
func (m *Marquee) Font() Font {
	return m.font
}

// Height returns the number of rows the marquee occupies.
func (m *Marquee) Height() int {
	return m.font.Height()
}

// Window returns exactly ContainerWidth cells showing the text at its
// current offset. Anything outside the viewport is clipped; a double-width
// rune cut by either edge is replaced by spaces.
func (m *Marquee) Window() string {
	if m.containerWidth == 0 {
		return ""
	}
	cells := make([]rune, m.containerWidth)
	for i := range cells {
		cells[i] = ' '
	}

	x := int(math.Floor(m.offset))
	for _, r := range m.text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= m.containerWidth {
			cells[x] = r
			if w == 2 {
				cells[x+1] = 0
			}
		}
		x += w
		if x >= m.containerWidth {
			break
		}
	}

	var sb strings.Builder
	for _, r := range cells {
		if r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
