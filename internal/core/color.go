package core

// Color represents a foreground color for a screen cell.
// The palette is the terminal-green set the game is drawn with; the
// platform maps each value to an ANSI color on a black background.
type Color uint8

const (
	ColorDefault     Color = iota
	ColorGreen             // body text
	ColorBrightGreen       // titles, focused option, fully visible cursor
	ColorDimGreen          // borders, cursor mid-fade
	ColorGray              // help line, placeholder art
)
