package core

import "testing"

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"disjoint", Span{0, 1}, Span{2, 3}, false},
		{"touching", Span{0, 2}, Span{2, 3}, false},
		{"partial", Span{0, 2.5}, Span{2, 3}, true},
		{"contained", Span{1, 2}, Span{0, 3}, true},
		{"reversed order", Span{2, 3}, Span{0, 2.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSpanWithin(t *testing.T) {
	gap := Span{100, 240}
	tests := []struct {
		name string
		s    Span
		want bool
	}{
		{"inside", Span{120, 150}, true},
		{"flush edges", Span{100, 240}, true},
		{"pokes above", Span{90, 130}, false},
		{"pokes below", Span{220, 250}, false},
		{"larger", Span{0, 300}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Within(gap); got != tt.want {
				t.Errorf("%v.Within(%v) = %v, want %v", tt.s, gap, got, tt.want)
			}
		})
	}
}

func TestSpanAround(t *testing.T) {
	s := SpanAround(80, 16)
	if s.Lo != 64 || s.Hi != 96 {
		t.Errorf("SpanAround(80, 16) = %v, want {64 96}", s)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
		{7, 0, 4, 4},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}
