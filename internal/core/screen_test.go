package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("new screen should be blank, got %q", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	s.Paint(-1, 0, RGB(1, 2, 3))
	s.Paint(4, 1, RGB(1, 2, 3))
	s.Paint(0, 2, RGB(1, 2, 3))

	if got := s.GetCell(9, 9); got != blankCell {
		t.Errorf("out-of-bounds cell = %+v, want blank", got)
	}
	for y := range 2 {
		for x := range 4 {
			if !s.GetCell(x, y).Bg.IsDefault() {
				t.Errorf("cell (%d,%d) painted by out-of-bounds call", x, y)
			}
		}
	}
}

func TestScreenTextClips(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawTextColored(3, 0, "Hello", ColorDefault)
	s.DrawTextColored(-2, 1, "Hello", ColorDefault)

	if got := s.Row(0); got != "   He" {
		t.Errorf("Row(0) = %q, want %q", got, "   He")
	}
	if got := s.Row(1); got != "llo  " {
		t.Errorf("Row(1) = %q, want %q", got, "llo  ")
	}
}

func TestScreenResizeBlanks(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawTextColored(0, 0, "Hello", ColorDefault)

	s.Resize(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 8x3", s.Width(), s.Height())
	}
	if got := s.Row(0); strings.TrimSpace(got) != "" {
		t.Errorf("resized screen should be blank, row 0 = %q", got)
	}

	s.Resize(-3, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should clamp to 0, got %d %q", s.Width(), s.String())
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, want spaces", got)
	}
}

func TestScreenPaintAndColors(t *testing.T) {
	s := NewScreen(6, 3)
	bg := RGB(0xfd, 0xba, 0x74)
	fg := RGB(0x1f, 0x29, 0x37)

	s.Paint(1, 1, bg)
	s.DrawTextColored(1, 1, "A", fg)

	cell := s.GetCell(1, 1)
	if cell.Rune != 'A' {
		t.Errorf("expected 'A', got %q", cell.Rune)
	}
	if cell.Bg != bg {
		t.Errorf("text should keep painted background, got %s", cell.Bg.Hex())
	}
	if cell.Fg != fg {
		t.Errorf("expected foreground %s, got %s", fg.Hex(), cell.Fg.Hex())
	}

	s.Paint(1, 1, bg)
	if s.GetCell(1, 1).Rune != ' ' {
		t.Error("Paint should clear the glyph")
	}

	s.Clear()
	if !s.GetCell(1, 1).Bg.IsDefault() {
		t.Error("Clear should reset background to default")
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(0x22, 0xc5, 0x5e).Hex(); got != "#22c55e" {
		t.Errorf("Hex() = %q, expected #22c55e", got)
	}
	if ColorDefault.Hex() != "" {
		t.Error("default color should have empty hex")
	}
	if RGB(0, 0, 0).IsDefault() {
		t.Error("black must be distinguishable from the default color")
	}
}
