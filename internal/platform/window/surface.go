package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-kids/internal/canvas"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// textHeight is the logical height of one line of text.
const textHeight = 20.0

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface draws logical canvas calls onto an Ebitengine image.
type Surface struct {
	dst     *ebiten.Image
	vp      *canvas.Viewport
	scratch *ebiten.Image // Text is printed here, then scaled and tinted
}

// NewSurface creates a surface bound to a viewport. Target is set per frame.
func NewSurface(vp *canvas.Viewport) *Surface {
	return &Surface{vp: vp, scratch: ebiten.NewImage(glyphW*64, glyphH)}
}

// SetTarget selects the image subsequent calls draw into.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) pt(x, y float64) (float32, float32) {
	px, py := s.vp.ToPhysical(x, y)
	return float32(px), float32(py)
}

func (s *Surface) size(l float64) float32 {
	sx, _ := s.vp.Scale()
	return float32(l * sx)
}

func vertex(x, y float32, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: x, DstY: y, SrcX: 1, SrcY: 1,
		ColorR: float32(c.R) / 0xff,
		ColorG: float32(c.G) / 0xff,
		ColorB: float32(c.B) / 0xff,
		ColorA: float32(c.A) / 0xff,
	}
}

// VerticalGradient fills the logical field with a top-to-bottom blend.
func (s *Surface) VerticalGradient(top, bottom color.RGBA) {
	lw, lh := s.vp.Logical()
	x0, y0 := s.pt(0, 0)
	x1, y1 := s.pt(lw, lh)
	vs := []ebiten.Vertex{
		vertex(x0, y0, top),
		vertex(x1, y0, top),
		vertex(x0, y1, bottom),
		vertex(x1, y1, bottom),
	}
	s.dst.DrawTriangles(vs, []uint16{0, 1, 2, 1, 3, 2}, whiteSubImage, nil)
}

// FillRect implements canvas.Surface.
func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	px, py := s.pt(x, y)
	vector.DrawFilledRect(s.dst, px, py, s.size(w), s.size(h), c, true)
}

// StrokeRect implements canvas.Surface.
func (s *Surface) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	px, py := s.pt(x, y)
	vector.StrokeRect(s.dst, px, py, s.size(w), s.size(h), s.size(width), c, true)
}

// FillCircle implements canvas.Surface.
func (s *Surface) FillCircle(cx, cy, r float64, c color.RGBA) {
	px, py := s.pt(cx, cy)
	vector.DrawFilledCircle(s.dst, px, py, s.size(r), c, true)
}

// FillTriangle implements canvas.Surface.
func (s *Surface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.RGBA) {
	ax, ay := s.pt(x1, y1)
	bx, by := s.pt(x2, y2)
	cx, cy := s.pt(x3, y3)
	vs := []ebiten.Vertex{vertex(ax, ay, c), vertex(bx, by, c), vertex(cx, cy, c)}
	s.dst.DrawTriangles(vs, []uint16{0, 1, 2}, whiteSubImage, nil)
}

// Text prints s with the debug font, scaled to one logical line and tinted.
func (s *Surface) Text(x, y float64, str string, c color.RGBA) {
	n := min(len(str), s.scratch.Bounds().Dx()/glyphW)
	if n == 0 {
		return
	}
	s.scratch.Clear()
	ebitenutil.DebugPrintAt(s.scratch, str[:n], 0, 0)

	_, sy := s.vp.Scale()
	k := math.Max(sy*textHeight/glyphH, 0.5)
	px, py := s.vp.ToPhysical(x, y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(c)
	op.Filter = ebiten.FilterNearest
	src := s.scratch.SubImage(image.Rect(0, 0, n*glyphW, glyphH)).(*ebiten.Image)
	s.dst.DrawImage(src, op)
}

var _ canvas.Surface = (*Surface)(nil)
