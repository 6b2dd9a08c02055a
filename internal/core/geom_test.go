package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{5, 5, true},    // top-left corner
		{14, 14, true},  // bottom-right inside
		{15, 15, false}, // one past the edge
		{10, 10, true},  // center
		{4, 5, false},   // just left
		{5, 4, false},   // just above
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectInsetTranslate(t *testing.T) {
	r := NewRect(2, 3, 10, 6)

	in := r.Inset(1)
	if in != NewRect(3, 4, 8, 4) {
		t.Errorf("Inset(1) = %+v", in)
	}

	// Over-inset collapses to zero size instead of going negative
	if tiny := r.Inset(10); tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset(10) should collapse, got %+v", tiny)
	}

	moved := r.Translate(4, -1)
	if moved.X != 6 || moved.Y != 2 || moved.W != 10 || moved.H != 6 {
		t.Errorf("Translate(4, -1) = %+v", moved)
	}
	if moved.Right() != 16 || moved.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d, expected 16/8", moved.Right(), moved.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %f", got)
	}
	if got := ClampF(0.25, 0, 1); got != 0.25 {
		t.Errorf("ClampF(0.25, 0, 1) = %f", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max failed")
	}
}
