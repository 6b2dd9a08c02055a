// Package story holds the level catalog: the fixed, ordered sequence of
// narrative beats a play-through walks through.
package story

// Choice selects one of a level's two options.
type Choice int

const (
	ChoiceFirst Choice = iota
	ChoiceSecond
)

// String returns the 1-based option label used in logs and the run journal.
func (c Choice) String() string {
	switch c {
	case ChoiceFirst:
		return "1"
	case ChoiceSecond:
		return "2"
	default:
		return "?"
	}
}

// Valid reports whether c names one of the two options.
func (c Choice) Valid() bool {
	return c == ChoiceFirst || c == ChoiceSecond
}

// Option is one tappable choice of a level.
type Option struct {
	Image   string // Asset identifier, e.g. "1x1"
	Score   int    // Added to the running score when chosen
	Caption string
}

// Level is one narrative beat with two mutually exclusive scored options.
type Level struct {
	Title       string
	Description string
	Options     [2]Option
}

// Option returns the option selected by c.
// Invalid choices return the zero Option.
func (l Level) Option(c Choice) Option {
	if !c.Valid() {
		return Option{}
	}
	return l.Options[c]
}

// Catalog is an ordered, read-only sequence of levels.
// The zero value is an empty catalog.
type Catalog struct {
	levels []Level
}

// NewCatalog builds a catalog from the given levels, in order.
// The slice is copied so later changes by the caller are not observed.
func NewCatalog(levels ...Level) Catalog {
	c := Catalog{levels: make([]Level, len(levels))}
	copy(c.levels, levels)
	return c
}

// Len returns the number of levels.
func (c Catalog) Len() int {
	return len(c.levels)
}

// Level returns the level at the given zero-based index.
// Returns false if the index is out of range.
func (c Catalog) Level(index int) (Level, bool) {
	if index < 0 || index >= len(c.levels) {
		return Level{}, false
	}
	return c.levels[index], true
}

// Levels returns a copy of all levels in order.
func (c Catalog) Levels() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// ImageIDs returns every distinct option image identifier, in first-use order.
func (c Catalog) ImageIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, lvl := range c.levels {
		for _, opt := range lvl.Options {
			if opt.Image == "" || seen[opt.Image] {
				continue
			}
			seen[opt.Image] = true
			ids = append(ids, opt.Image)
		}
	}
	return ids
}
