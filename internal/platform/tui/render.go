package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-kids/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

// styleCache keeps one lipgloss style per color pair seen.
type styleCache map[cellStyle]lipgloss.Style

func (c styleCache) get(key cellStyle) lipgloss.Style {
	if s, ok := c[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if !key.fg.IsDefault() {
		s = s.Foreground(lipgloss.Color(key.fg.Hex()))
	}
	if !key.bg.IsDefault() {
		s = s.Background(lipgloss.Color(key.bg.Hex()))
	}
	c[key] = s
	return s
}

var defaultStyles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(defaultStyles.get(key).Render(run.String()))
		}
	}
	return sb.String()
}
