// Package canvas defines the 2D drawing contract the game renders into and
// the logical-to-physical coordinate transform shared by every front end.
//
// All Surface coordinates are logical field units. Implementations map them
// to their own pixels or cells through a Viewport.
package canvas

import "image/color"

// Surface is a 2D drawing target.
type Surface interface {
	// VerticalGradient fills the whole surface, blending top to bottom.
	VerticalGradient(top, bottom color.RGBA)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c color.RGBA)
	// StrokeRect outlines a rectangle with the given line width.
	StrokeRect(x, y, w, h, width float64, c color.RGBA)
	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, r float64, c color.RGBA)
	// FillTriangle fills the triangle with the three given corners.
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.RGBA)
	// Text draws s with its top-left corner at (x, y).
	Text(x, y float64, s string, c color.RGBA)
}

// Hex builds an opaque color from a 0xRRGGBB literal.
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// Lerp blends a toward b by t in [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
