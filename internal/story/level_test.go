package story

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.Len() != 5 {
		t.Fatalf("Len() = %d, expected 5", c.Len())
	}

	for i := 0; i < c.Len(); i++ {
		lvl, ok := c.Level(i)
		if !ok {
			t.Fatalf("Level(%d) not found", i)
		}
		if lvl.Title == "" || lvl.Description == "" {
			t.Errorf("level %d has empty title or description", i)
		}
		for j, opt := range lvl.Options {
			if opt.Image == "" || opt.Caption == "" {
				t.Errorf("level %d option %d incomplete: %+v", i, j+1, opt)
			}
		}
	}

	first, _ := c.Level(0)
	if first.Title != "level 1" || first.Description != "Arrested for a bar fight." {
		t.Errorf("unexpected first level: %+v", first)
	}
	if first.Options[0].Score != 1 || first.Options[1].Score != -1 {
		t.Errorf("unexpected first level scores: %+v", first.Options)
	}
}

func TestCatalogOutOfRange(t *testing.T) {
	c := Default()

	for _, idx := range []int{-1, 5, 100} {
		if _, ok := c.Level(idx); ok {
			t.Errorf("Level(%d) should not be found", idx)
		}
	}

	var empty Catalog
	if empty.Len() != 0 {
		t.Errorf("zero Catalog Len() = %d", empty.Len())
	}
	if _, ok := empty.Level(0); ok {
		t.Error("zero Catalog should have no levels")
	}
}

func TestCatalogIsReadOnly(t *testing.T) {
	src := []Level{{Title: "a"}, {Title: "b"}}
	c := NewCatalog(src...)

	// Mutating the source slice must not leak into the catalog
	src[0].Title = "changed"
	if lvl, _ := c.Level(0); lvl.Title != "a" {
		t.Errorf("catalog observed source mutation: %q", lvl.Title)
	}

	// Nor may mutating the copy returned by Levels
	all := c.Levels()
	all[1].Title = "changed"
	if lvl, _ := c.Level(1); lvl.Title != "b" {
		t.Errorf("catalog observed Levels() mutation: %q", lvl.Title)
	}
}

func TestLevelOption(t *testing.T) {
	lvl, _ := Default().Level(4)

	if got := lvl.Option(ChoiceFirst); got.Image != "5x1" || got.Caption != "shout for help" {
		t.Errorf("Option(first) = %+v", got)
	}
	if got := lvl.Option(ChoiceSecond); got.Image != "5x2" || got.Score != -1 {
		t.Errorf("Option(second) = %+v", got)
	}
	if got := lvl.Option(Choice(7)); got != (Option{}) {
		t.Errorf("invalid choice should give zero Option, got %+v", got)
	}
}

func TestChoiceString(t *testing.T) {
	tests := []struct {
		c    Choice
		want string
	}{
		{ChoiceFirst, "1"},
		{ChoiceSecond, "2"},
		{Choice(-1), "?"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Choice(%d).String() = %q, expected %q", tt.c, got, tt.want)
		}
	}
}

func TestImageIDs(t *testing.T) {
	ids := Default().ImageIDs()
	want := []string{"1x1", "1x2", "2x1", "3x1", "4x1", "5x1", "5x2"}

	if len(ids) != len(want) {
		t.Fatalf("ImageIDs() = %v, expected %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ImageIDs()[%d] = %q, expected %q", i, ids[i], want[i])
		}
	}
}
