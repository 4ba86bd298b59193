package tui

import (
	"strings"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string using the current
// theme.
func RenderScreen(s *core.Screen) string {
	return RenderScreenWithTheme(s, theme)
}

// RenderScreenWithTheme converts a Screen buffer to a styled string.
// Adjacent cells of the same color share one style run.
func RenderScreenWithTheme(s *core.Screen, t Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	plain := t.Palette[core.ColorDefault]
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := t.Palette[color]
			if !ok {
				style = plain
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
