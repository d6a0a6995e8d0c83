package main

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{"5", 4, false},
		{"0", 0, true},
		{"6", 0, true},
		{"-1", 0, true},
		{"two", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseLevel(tt.arg, 5)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLevel(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseLevel(%q) = %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}
