package canvas

import "testing"

func TestRowListAt(t *testing.T) {
	rows := RowList{X: 40, Top: 190, Height: 56, Gap: 10}

	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"first row top edge", 40, 190, 0},
		{"first row middle", 180, 218, 0},
		{"first row bottom edge", 180, 246, 0},
		{"gap after first row", 180, 250, -1},
		{"second row", 180, 260, 1},
		{"last row", 180, 190 + 4*66 + 10, 4},
		{"past last row", 180, 190 + 5*66 + 10, -1},
		{"above list", 180, 100, -1},
		{"left margin", 39, 218, -1},
		{"right margin", 321, 218, -1},
		{"right edge", 320, 218, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rows.At(tt.x, tt.y, 5, 360); got != tt.want {
				t.Errorf("At(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRowListGeometry(t *testing.T) {
	rows := RowList{X: 40, Top: 190, Height: 56, Gap: 10}
	if got := rows.Y(2); got != 322 {
		t.Errorf("Y(2) = %v, want 322", got)
	}
	if got := rows.Width(360); got != 280 {
		t.Errorf("Width(360) = %v, want 280", got)
	}

	// Every row's own middle hits back to that row.
	for i := range 5 {
		if got := rows.At(180, rows.Y(i)+rows.Height/2, 5, 360); got != i {
			t.Errorf("middle of row %d hits %d", i, got)
		}
	}
}
