package core

import (
	"strings"
)

// Cell is a single character cell with foreground and background colors.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a row-major cell buffer. Drawing code paints cells and the
// terminal front end turns them into styled text.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the dimensions and blanks every cell.
// Callers repaint the whole field after a resize.
func (s *Screen) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	if n := s.width * s.height; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Paint sets the background color of a cell and clears its glyph.
// Out-of-bounds coordinates are ignored.
func (s *Screen) Paint(x, y int, bg Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: ' ', Bg: bg}
	}
}

// GetCell returns the cell at the given position, or a blank cell.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blankCell
}

// DrawTextColored writes text over existing backgrounds, clipping at the edges.
func (s *Screen) DrawTextColored(x, y int, text string, fg Color) {
	for _, r := range text {
		if i, ok := s.index(x, y); ok {
			s.cells[i].Rune = r
			s.cells[i].Fg = fg
		}
		x++
	}
}

// Row returns the runes of row y, or spaces when y is outside the screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the runes of the whole screen, one row per line.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
