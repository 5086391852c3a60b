package core

import "testing"

func TestRectContains(t *testing.T) {
	grid := NewRect(0, 0, 20, 10)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"inside", 5, 5, true},
		{"last cell", 19, 9, true},
		{"right edge (exclusive)", 20, 5, false},
		{"bottom edge (exclusive)", 5, 10, false},
		{"left of grid", -1, 5, false},
		{"above grid", 5, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := grid.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectArea(t *testing.T) {
	if a := NewRect(0, 0, 20, 10).Area(); a != 200 {
		t.Errorf("Area() = %d, expected 200", a)
	}
	if a := NewRect(0, 0, 0, 10).Area(); a != 0 {
		t.Errorf("Area() of empty rect = %d, expected 0", a)
	}
	if a := NewRect(0, 0, -3, 10).Area(); a != 0 {
		t.Errorf("Area() of negative rect = %d, expected 0", a)
	}
}
