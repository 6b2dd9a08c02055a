package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-textgame/internal/core"
)

// background is the terminal black every cell is drawn on.
var background = lipgloss.Color("0")

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle().Background(background),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Background(background),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Background(background).Bold(true),
	core.ColorDimGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Background(background),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(background),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				// Right half of a wide rune: already covered by its left cell
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
