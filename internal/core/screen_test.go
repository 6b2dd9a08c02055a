package core

import (
	"strings"
	"testing"
	"time"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 20)

	if s.Width() != 40 {
		t.Errorf("Width() = %d, expected 40", s.Width())
	}
	if s.Height() != 20 {
		t.Errorf("Height() = %d, expected 20", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorGreen)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected X/green", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorGreen)
	s.Set(100, 0, 'A', ColorGreen)
	s.Set(0, -1, 'A', ColorGreen)
	s.Set(0, 100, 'A', ColorGreen)

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawText(0, 0, "XXXXX", ColorGreen)
	s.Clear()

	for x := 0; x < 5; x++ {
		if cell := s.GetCell(x, 0); cell.Rune != ' ' || cell.Color != ColorDefault {
			t.Errorf("After Clear, expected blank at (%d, 0), got %+v", x, cell)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	n := s.DrawText(2, 1, "Hello", ColorGreen)
	if n != 5 {
		t.Errorf("DrawText advanced %d cells, expected 5", n)
	}

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorGreen)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 3)
	clip := NewRect(5, 0, 5, 3)

	// Starts left of the clip, runs past its right edge
	s.DrawTextClipped(clip, 2, 1, "abcdefghijkl", ColorGreen)

	if got := s.Row(1); got != "     defgh          " {
		t.Errorf("Row(1) = %q", got)
	}
}

func TestScreenDrawTextWide(t *testing.T) {
	s := NewScreen(6, 1)
	n := s.DrawText(0, 0, "a世b", ColorGreen)
	if n != 4 {
		t.Errorf("DrawText advanced %d cells, expected 4", n)
	}
	if s.Get(1, 0) != '世' || s.Get(2, 0) != 0 || s.Get(3, 0) != 'b' {
		t.Errorf("wide rune layout wrong: %q", s.Row(0))
	}
	if got := s.Row(0); got != "a世b  " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(NewRect(0, 0, 20, 5), 2, "Hi", ColorGreen)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDimGreen)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorDimGreen {
		t.Error("box should use the given color")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorGreen)
	s.DrawText(0, 1, "BBBBB", ColorGreen)
	s.DrawText(0, 2, "CCCCC", ColorGreen)

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorGreen)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.Row(0)) != "" {
		t.Errorf("Resize should discard content, row 0 = %q", s.Row(0))
	}

	// Negative sizes collapse to an empty buffer
	s.Resize(-1, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative resize should give 0x0, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if got := s.Row(-1); got != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}

func TestRuntimeConfigFrameInterval(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.FrameInterval(); got != time.Second/30 {
		t.Errorf("FrameInterval() = %v, expected %v", got, time.Second/30)
	}

	cfg.TickRate = 0
	if got := cfg.FrameInterval(); got != time.Second/30 {
		t.Errorf("zero tick rate should fall back to 30fps, got %v", got)
	}
}
