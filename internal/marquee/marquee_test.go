package marquee

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
)

func TestLayoutMeasuresAndStarts(t *testing.T) {
	m := New("Arrested for a bar fight.", FontFootnote, 6*time.Second)

	if m.Started() {
		t.Fatal("marquee should not start before layout")
	}
	if !m.Layout(30) {
		t.Fatal("first Layout should start the animation")
	}

	if m.ContainerWidth() != 30 {
		t.Errorf("ContainerWidth() = %d, expected 30", m.ContainerWidth())
	}
	if m.TextWidth() != 25 {
		t.Errorf("TextWidth() = %d, expected 25", m.TextWidth())
	}
	if m.Offset() != 30 {
		t.Errorf("initial Offset() = %v, expected container width 30", m.Offset())
	}
	if m.StartOffset() != 30 {
		t.Errorf("StartOffset() = %v, expected 30", m.StartOffset())
	}
	if m.EndOffset() != -25 {
		t.Errorf("EndOffset() = %v, expected -25", m.EndOffset())
	}
}

func TestLayoutIsOneShot(t *testing.T) {
	m := New("hello", FontFootnote, time.Second)
	m.Layout(20)
	m.Advance(500 * time.Millisecond)
	mid := m.Offset()

	// Re-layout with a different width must neither restart nor re-measure
	if m.Layout(50) {
		t.Error("second Layout should not start another animation")
	}
	if m.ContainerWidth() != 20 {
		t.Errorf("ContainerWidth() = %d after re-layout, expected 20", m.ContainerWidth())
	}
	if m.Offset() != mid {
		t.Errorf("Offset() = %v after re-layout, expected %v", m.Offset(), mid)
	}
}

func TestAdvanceIsLinear(t *testing.T) {
	// 10 wide viewport, 10 wide text: traversal covers 20 cells over 2s
	m := New("0123456789", FontCaption, 2*time.Second)
	m.Layout(10)

	tests := []struct {
		dt   time.Duration
		want float64
	}{
		{500 * time.Millisecond, 5},
		{500 * time.Millisecond, 0},
		{500 * time.Millisecond, -5},
	}
	for i, tt := range tests {
		m.Advance(tt.dt)
		if got := m.Offset(); got != tt.want {
			t.Errorf("step %d: Offset() = %v, expected %v", i, got, tt.want)
		}
	}
}

func TestAdvanceLoopsWithoutReversing(t *testing.T) {
	m := New("abcd", FontCaption, time.Second)
	m.Layout(6)

	m.Advance(999 * time.Millisecond)
	if m.Offset() > -3.9 {
		t.Errorf("near end Offset() = %v, expected close to -4", m.Offset())
	}

	// Completing the traversal restarts at the viewport width
	m.Advance(time.Millisecond)
	if m.Offset() != 6 {
		t.Errorf("after full traversal Offset() = %v, expected 6", m.Offset())
	}

	// And keeps moving left, never back
	prev := m.Offset()
	m.Advance(100 * time.Millisecond)
	if m.Offset() >= prev {
		t.Errorf("Offset() moved from %v to %v, expected leftwards", prev, m.Offset())
	}
}

func TestAdvanceBeforeLayout(t *testing.T) {
	m := New("abc", FontCaption, time.Second)
	m.Advance(time.Second)
	if m.Offset() != 0 || m.Started() {
		t.Error("Advance before Layout should do nothing")
	}
}

func TestShortTextStillScrolls(t *testing.T) {
	m := New("hi", FontFootnote, time.Second)
	m.Layout(40)

	start := m.Offset()
	m.Advance(250 * time.Millisecond)
	if m.Offset() == start {
		t.Error("text narrower than the viewport should still scroll")
	}
}

func TestWindowClipsToViewport(t *testing.T) {
	m := New("abcdef", FontCaption, 12*time.Second)
	m.Layout(6)

	// At mount the text sits just off the right edge
	if got := m.Window(); got != "      " {
		t.Errorf("initial Window() = %q, expected blanks", got)
	}

	// 3 cells in: text starts at x=3, rest is clipped
	m.Advance(3 * time.Second)
	if got := m.Window(); got != "   abc" {
		t.Errorf("Window() = %q, expected %q", got, "   abc")
	}

	// 9 cells in: text starts at x=-3, left part is clipped
	m.Advance(6 * time.Second)
	if got := m.Window(); got != "def   " {
		t.Errorf("Window() = %q, expected %q", got, "def   ")
	}
}

func TestWindowWidthIsConstant(t *testing.T) {
	m := New("There are people next door who ask you loudly, ‘Where are you from?’.", FontFootnote, 6*time.Second)
	m.Layout(36)

	for i := 0; i < 200; i++ {
		m.Advance(37 * time.Millisecond)
		if w := runewidth.StringWidth(m.Window()); w != 36 {
			t.Fatalf("frame %d: window width %d, expected 36 (%q)", i, w, m.Window())
		}
	}
}

func TestWindowWideRuneAtEdge(t *testing.T) {
	m := New("世界", FontCaption, 8*time.Second)
	m.Layout(4)

	// Offset 3: first wide rune would need cells 3 and 4, so it is dropped
	m.Advance(time.Second)
	if got := m.Window(); got != "    " {
		t.Errorf("Window() = %q, expected blanks", got)
	}

	m.Advance(time.Second)
	if got := m.Window(); !strings.HasPrefix(got, "  世") {
		t.Errorf("Window() = %q, expected wide rune at x=2", got)
	}
}

func TestFontHeight(t *testing.T) {
	if FontFootnote.Height() <= FontCaption.Height() {
		t.Errorf("footnote height %d should exceed caption height %d",
			FontFootnote.Height(), FontCaption.Height())
	}
	m := New("x", FontCaption, time.Second)
	if m.Height() != FontCaption.Height() || m.Font() != FontCaption {
		t.Error("marquee height should follow its font")
	}
}
