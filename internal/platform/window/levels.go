package window

import (
	"fmt"

	"github.com/vovakirdan/flappy-kids/internal/canvas"
	"github.com/vovakirdan/flappy-kids/internal/session"
)

// Level select layout in logical units.
const (
	rowX      = 40.0
	rowHeight = 56.0
	barY      = 540.0
	barHeight = 14.0
)

var levelRows = canvas.RowList{X: rowX, Top: 190, Height: rowHeight, Gap: 10}

var (
	menuTop       = canvas.Hex(0xFFF7ED)
	menuBottom    = canvas.Hex(0xFED7AA)
	titleColor    = canvas.Hex(0x7C2D12)
	textColor     = canvas.Hex(0x9A3412)
	rowOpen       = canvas.Hex(0xFFFFFF)
	rowLocked     = canvas.Hex(0xFFEDD5)
	rowBorder     = canvas.Hex(0xFDBA74)
	rowCurrent    = canvas.Hex(0xEA580C)
	lockedText    = canvas.Hex(0xA8A29E)
	barTrack      = canvas.Hex(0xFFEDD5)
	barFill       = canvas.Hex(0xFB923C)
	statusFill    = canvas.Hex(0xFEF3C7)
	statusText    = canvas.Hex(0x78350F)
	letterboxFill = canvas.Hex(0xFFF7ED)
	markerColor   = canvas.Hex(0xFDE047)
)

// drawLevelSelect renders the hero banner, level rows and progress bar.
func drawLevelSelect(dst canvas.Surface, sess *session.Session, fieldW float64) {
	dst.VerticalGradient(menuTop, menuBottom)

	dst.Text(rowX, 48, "FLAPPY FUN FOR KIDS", textColor)
	dst.Text(rowX, 84, "Tap, Fly, and", titleColor)
	dst.Text(rowX, 110, "Unlock Levels!", titleColor)
	dst.Text(rowX, 146, "Tap a level to play", textColor)

	p := sess.Progress()
	for i, lvl := range sess.Catalog().Levels() {
		y := levelRows.Y(i)
		w := levelRows.Width(fieldW)

		fill, label, fg := rowOpen, fmt.Sprintf("%d  %s", i+1, lvl.Name), titleColor
		if !p.IsUnlocked(i) {
			fill, label, fg = rowLocked, fmt.Sprintf("%d  locked", i+1), lockedText
		}
		dst.FillRect(rowX, y, w, rowHeight, fill)

		border := rowBorder
		if i == sess.Selected() {
			border = rowCurrent
		}
		dst.StrokeRect(rowX, y, w, rowHeight, 3, border)
		dst.Text(rowX+16, y+18, label, fg)
		if i == p.Unlocked {
			dst.FillCircle(rowX+w-22, y+rowHeight/2, 8, markerColor)
		}
	}

	pct := sess.Percent()
	dst.Text(rowX, barY-28, fmt.Sprintf("Progress %.0f%%", pct), textColor)
	dst.FillRect(rowX, barY, fieldW-2*rowX, barHeight, barTrack)
	dst.FillRect(rowX, barY, (fieldW-2*rowX)*pct/100, barHeight, barFill)
	dst.StrokeRect(rowX, barY, fieldW-2*rowX, barHeight, 1, rowBorder)

	drawStatus(dst, sess.Status(), fieldW)
}

// drawStatus shows a short message near the top of the field.
func drawStatus(dst canvas.Surface, msg string, fieldW float64) {
	if msg == "" {
		return
	}
	dst.FillRect(rowX-16, 580, fieldW-2*(rowX-16), 36, statusFill)
	dst.Text(rowX, 588, msg, statusText)
}
