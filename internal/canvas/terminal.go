package canvas

import (
	"image/color"
	"math"

	"github.com/vovakirdan/flappy-kids/internal/core"
)

// TermSurface rasterizes logical drawing calls into a core.Screen.
// A cell is covered by a shape when the logical point under its center is.
type TermSurface struct {
	screen *core.Screen
	vp     *Viewport
}

// NewTermSurface wraps a screen. The logical field is stretched over every cell.
func NewTermSurface(screen *core.Screen, logicalW, logicalH float64) *TermSurface {
	vp := NewStretchViewport(logicalW, logicalH)
	vp.Resize(float64(screen.Width()), float64(screen.Height()))
	return &TermSurface{screen: screen, vp: vp}
}

// Sync re-reads the screen size after the terminal was resized.
func (t *TermSurface) Sync() {
	t.vp.Resize(float64(t.screen.Width()), float64(t.screen.Height()))
}

// Viewport exposes the active transform.
func (t *TermSurface) Viewport() *Viewport {
	return t.vp
}

// cellCenter returns the logical point under the center of cell (cx, cy).
func (t *TermSurface) cellCenter(cx, cy int) (float64, float64) {
	return t.vp.ToLogical(float64(cx)+0.5, float64(cy)+0.5)
}

// cellRange returns the inclusive cell range that may intersect the logical box.
func (t *TermSurface) cellRange(x0, y0, x1, y1 float64) (int, int, int, int) {
	px0, py0 := t.vp.ToPhysical(x0, y0)
	px1, py1 := t.vp.ToPhysical(x1, y1)
	cx0 := core.Clamp(int(math.Floor(px0)), 0, t.screen.Width()-1)
	cy0 := core.Clamp(int(math.Floor(py0)), 0, t.screen.Height()-1)
	cx1 := core.Clamp(int(math.Ceil(px1)), 0, t.screen.Width()-1)
	cy1 := core.Clamp(int(math.Ceil(py1)), 0, t.screen.Height()-1)
	return cx0, cy0, cx1, cy1
}

// VerticalGradient paints every row with its interpolated color.
func (t *TermSurface) VerticalGradient(top, bottom color.RGBA) {
	_, lh := t.vp.Logical()
	for cy := 0; cy < t.screen.Height(); cy++ {
		_, ly := t.cellCenter(0, cy)
		frac := 0.0
		if lh > 0 {
			frac = ly / lh
		}
		bg := core.FromRGBA(Lerp(top, bottom, frac))
		for cx := 0; cx < t.screen.Width(); cx++ {
			t.screen.Paint(cx, cy, bg)
		}
	}
}

func inBox(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

// FillRect paints the cells whose centers fall inside the rectangle.
func (t *TermSurface) FillRect(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 || t.screen.Width() == 0 || t.screen.Height() == 0 {
		return
	}
	bg := core.FromRGBA(c)
	cx0, cy0, cx1, cy1 := t.cellRange(x, y, x+w, y+h)
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			if px, py := t.cellCenter(cx, cy); inBox(px, py, x, y, w, h) {
				t.screen.Paint(cx, cy, bg)
			}
		}
	}
}

// StrokeRect paints the boundary cells of the rectangle's covered region.
// Terminal cells are coarser than any stroke, so the outline is always one cell.
func (t *TermSurface) StrokeRect(x, y, w, h, _ float64, c color.RGBA) {
	if w <= 0 || h <= 0 || t.screen.Width() == 0 || t.screen.Height() == 0 {
		return
	}
	bg := core.FromRGBA(c)
	covered := func(cx, cy int) bool {
		px, py := t.cellCenter(cx, cy)
		return inBox(px, py, x, y, w, h)
	}
	cx0, cy0, cx1, cy1 := t.cellRange(x, y, x+w, y+h)
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			if !covered(cx, cy) {
				continue
			}
			if !covered(cx-1, cy) || !covered(cx+1, cy) || !covered(cx, cy-1) || !covered(cx, cy+1) {
				t.screen.Paint(cx, cy, bg)
			}
		}
	}
}

// FillCircle paints covered cells, always including the cell under the center
// so small shapes never vanish at terminal resolution.
func (t *TermSurface) FillCircle(cx, cy, r float64, c color.RGBA) {
	if t.screen.Width() == 0 || t.screen.Height() == 0 {
		return
	}
	bg := core.FromRGBA(c)
	x0, y0, x1, y1 := t.cellRange(cx-r, cy-r, cx+r, cy+r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := t.cellCenter(x, y)
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= r*r {
				t.screen.Paint(x, y, bg)
			}
		}
	}
	pcx, pcy := t.vp.ToPhysical(cx, cy)
	t.screen.Paint(int(math.Floor(pcx)), int(math.Floor(pcy)), bg)
}

// FillTriangle paints the cells whose centers fall inside the triangle.
func (t *TermSurface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.RGBA) {
	if t.screen.Width() == 0 || t.screen.Height() == 0 {
		return
	}
	bg := core.FromRGBA(c)
	minX, maxX := min(x1, x2, x3), max(x1, x2, x3)
	minY, maxY := min(y1, y2, y3), max(y1, y2, y3)
	edge := func(ax, ay, bx, by, px, py float64) float64 {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	cx0, cy0, cx1, cy1 := t.cellRange(minX, minY, maxX, maxY)
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			px, py := t.cellCenter(cx, cy)
			d1 := edge(x1, y1, x2, y2, px, py)
			d2 := edge(x2, y2, x3, y3, px, py)
			d3 := edge(x3, y3, x1, y1, px, py)
			hasNeg := d1 < 0 || d2 < 0 || d3 < 0
			hasPos := d1 > 0 || d2 > 0 || d3 > 0
			if !(hasNeg && hasPos) {
				t.screen.Paint(cx, cy, bg)
			}
		}
	}
}

// Text writes s starting at the cell under (x, y), over existing backgrounds.
func (t *TermSurface) Text(x, y float64, s string, c color.RGBA) {
	px, py := t.vp.ToPhysical(x, y)
	t.screen.DrawTextColored(int(math.Floor(px)), int(math.Floor(py)), s, core.FromRGBA(c))
}
