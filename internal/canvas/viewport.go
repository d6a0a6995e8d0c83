package canvas

// MaxDeviceScale caps the backing-store multiplier on very dense displays.
const MaxDeviceScale = 2.0

// Viewport maps logical field coordinates onto a physical drawing surface.
//
// In fit mode the field keeps its aspect ratio: one uniform scale is used and
// the field is centered (letterboxed) inside the physical area. In stretch
// mode each axis scales independently, which suits terminal cells.
type Viewport struct {
	logicalW, logicalH float64
	physW, physH       float64
	scaleX, scaleY     float64
	offX, offY         float64
	stretch            bool
}

// NewViewport creates a fit-mode viewport whose physical size initially
// equals the logical size.
func NewViewport(logicalW, logicalH float64) *Viewport {
	v := &Viewport{logicalW: logicalW, logicalH: logicalH}
	v.Resize(logicalW, logicalH)
	return v
}

// NewStretchViewport creates a viewport that fills the physical area on both axes.
func NewStretchViewport(logicalW, logicalH float64) *Viewport {
	v := &Viewport{logicalW: logicalW, logicalH: logicalH, stretch: true}
	v.Resize(logicalW, logicalH)
	return v
}

// Resize recomputes the transform for a new physical size.
// Non-positive sizes collapse the transform to zero scale.
func (v *Viewport) Resize(physW, physH float64) {
	v.physW = max(physW, 0)
	v.physH = max(physH, 0)
	if v.logicalW <= 0 || v.logicalH <= 0 {
		v.scaleX, v.scaleY, v.offX, v.offY = 0, 0, 0, 0
		return
	}

	sx := v.physW / v.logicalW
	sy := v.physH / v.logicalH
	if v.stretch {
		v.scaleX, v.scaleY = sx, sy
		v.offX, v.offY = 0, 0
		return
	}

	s := min(sx, sy)
	v.scaleX, v.scaleY = s, s
	v.offX = (v.physW - v.logicalW*s) / 2
	v.offY = (v.physH - v.logicalH*s) / 2
}

// ToPhysical converts a logical point to physical coordinates.
func (v *Viewport) ToPhysical(x, y float64) (float64, float64) {
	return v.offX + x*v.scaleX, v.offY + y*v.scaleY
}

// ToLogical converts a physical point back to logical coordinates.
func (v *Viewport) ToLogical(px, py float64) (float64, float64) {
	if v.scaleX == 0 || v.scaleY == 0 {
		return 0, 0
	}
	return (px - v.offX) / v.scaleX, (py - v.offY) / v.scaleY
}

// Scale returns the per-axis logical-to-physical factors.
func (v *Viewport) Scale() (float64, float64) {
	return v.scaleX, v.scaleY
}

// Logical returns the logical field size.
func (v *Viewport) Logical() (float64, float64) {
	return v.logicalW, v.logicalH
}

// Physical returns the physical surface size.
func (v *Viewport) Physical() (float64, float64) {
	return v.physW, v.physH
}

// BackingSize converts a window's outside size in device-independent units
// into backing-store pixels, using the device scale clamped to [1, MaxDeviceScale].
// It returns the scale it applied.
func BackingSize(outsideW, outsideH, deviceScale float64) (w, h, scale float64) {
	scale = deviceScale
	if scale < 1 {
		scale = 1
	}
	if scale > MaxDeviceScale {
		scale = MaxDeviceScale
	}
	return float64(int(outsideW * scale)), float64(int(outsideH * scale)), scale
}
