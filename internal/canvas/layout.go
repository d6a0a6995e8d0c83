package canvas

// RowList lays out a vertical list of full-width rows in logical
// coordinates, inset by X on both sides.
type RowList struct {
	X, Top      float64
	Height, Gap float64
}

// Y returns the top edge of row i.
func (r RowList) Y(i int) float64 {
	return r.Top + float64(i)*(r.Height+r.Gap)
}

// Width returns the row width inside a field of width fieldW.
func (r RowList) Width(fieldW float64) float64 {
	return fieldW - 2*r.X
}

// At returns the row under a logical point, or -1 for the gaps between
// rows, the side margins and anything past the last of count rows.
func (r RowList) At(x, y float64, count int, fieldW float64) int {
	if x < r.X || x > fieldW-r.X || y < r.Top {
		return -1
	}
	i := int((y - r.Top) / (r.Height + r.Gap))
	if i >= count || y > r.Y(i)+r.Height {
		return -1
	}
	return i
}
