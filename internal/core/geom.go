// Package core provides the small shared types of the game: axis spans,
// semantic input, cell colors and the terminal cell buffer.
// It has no external dependencies so game logic stays pure and testable.
package core

// Span is a closed interval on one axis in field units.
// Collisions are resolved one axis at a time, so spans are all the game needs.
type Span struct {
	Lo, Hi float64
}

// SpanAround returns the span of a circle's extent on one axis.
func SpanAround(center, radius float64) Span {
	return Span{Lo: center - radius, Hi: center + radius}
}

// Overlaps reports whether the open interiors of two spans intersect.
// Touching edges do not count.
func (s Span) Overlaps(o Span) bool {
	return s.Hi > o.Lo && s.Lo < o.Hi
}

// Within reports whether s lies entirely inside o (edges inclusive).
func (s Span) Within(o Span) bool {
	return s.Lo >= o.Lo && s.Hi <= o.Hi
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	return min(max(val, lo), hi)
}
