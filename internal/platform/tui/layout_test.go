package tui

import (
	"testing"

	"github.com/vovakirdan/tui-textgame/internal/core"
)

func TestComputeLayoutAtOrigin(t *testing.T) {
	l := ComputeLayout(40, 20, 40, 20)

	if l.TooSmall {
		t.Fatal("exact fit reported as too small")
	}
	if l.Panel != core.NewRect(0, 0, 40, 20) {
		t.Errorf("Panel = %+v", l.Panel)
	}
	if l.Options[0] != core.NewRect(4, 6, 14, 7) {
		t.Errorf("Options[0] = %+v", l.Options[0])
	}
	if l.Options[1] != core.NewRect(22, 6, 14, 7) {
		t.Errorf("Options[1] = %+v", l.Options[1])
	}
	if l.CaptionRow != 13 || l.PromptRow != 15 || l.PromptX != 2 {
		t.Errorf("CaptionRow, PromptRow, PromptX = %d, %d, %d", l.CaptionRow, l.PromptRow, l.PromptX)
	}
	if l.EndingImage != core.NewRect(13, 3, 14, 7) {
		t.Errorf("EndingImage = %+v", l.EndingImage)
	}
	if l.EndingCaptionRow != 11 || l.EndingPromptRow != 13 {
		t.Errorf("ending rows = %d, %d", l.EndingCaptionRow, l.EndingPromptRow)
	}
	if l.Marquee.W != 36 || l.Marquee.H != 2 {
		t.Errorf("Marquee = %+v", l.Marquee)
	}
}

func TestComputeLayoutCenters(t *testing.T) {
	l := ComputeLayout(80, 24, 40, 20)
	if l.Panel.X != 20 || l.Panel.Y != 2 {
		t.Errorf("Panel origin = (%d, %d), want (20, 2)", l.Panel.X, l.Panel.Y)
	}
	if l.Options[0].X != 24 {
		t.Errorf("Options[0].X = %d, want 24", l.Options[0].X)
	}
}

func TestOptionAt(t *testing.T) {
	l := ComputeLayout(40, 20, 40, 20)

	tests := []struct {
		name   string
		x, y   int
		want   int
		wantOK bool
	}{
		{"left panel corner", 4, 6, 0, true},
		{"left panel inside", 10, 9, 0, true},
		{"right panel", 30, 12, 1, true},
		{"between panels", 19, 9, 0, false},
		{"below panels", 10, 13, 0, false},
		{"title row", 20, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.OptionAt(tt.x, tt.y)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("OptionAt(%d, %d) = %d, %v; want %d, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestOptionAtTooSmall(t *testing.T) {
	l := ComputeLayout(30, 10, 40, 20)
	if !l.TooSmall {
		t.Fatal("expected TooSmall")
	}
	if _, ok := l.OptionAt(l.Options[0].X, l.Options[0].Y); ok {
		t.Error("hit-test succeeded on a layout that is not drawn")
	}
}
