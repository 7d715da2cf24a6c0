package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(5, 10, 7, 3)

	if r.Right() != 12 || r.Bottom() != 13 {
		t.Errorf("edges = (%d, %d), expected (12, 13)", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 8 || cy != 11 {
		t.Errorf("Center() = (%d, %d), expected (8, 11)", cx, cy)
	}
}
