package core

import (
	"fmt"
	"image/color"
)

// Color is a 24-bit RGB cell color. The zero value means "terminal default".
type Color uint32

const colorSet Color = 1 << 24

// ColorDefault leaves the terminal's own color in place.
const ColorDefault Color = 0

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// FromRGBA converts an image/color value, dropping alpha.
func FromRGBA(c color.RGBA) Color {
	return RGB(c.R, c.G, c.B)
}

// IsDefault reports whether the color defers to the terminal.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Hex returns the color as "#rrggbb", or "" for ColorDefault.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	return fmt.Sprintf("#%06x", uint32(c&0xffffff))
}
