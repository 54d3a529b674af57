package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 1, 22, 22)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 10, 10, true},
		{"top-left corner", 2, 1, true},
		{"last column", 23, 5, true},
		{"right edge (exclusive)", 24, 5, false},
		{"bottom edge (exclusive)", 5, 23, false},
		{"outside left", 1, 5, false},
		{"outside top", 5, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
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

func TestAbs(t *testing.T) {
	for _, tc := range []struct{ in, out int }{{5, 5}, {-5, 5}, {0, 0}} {
		if got := Abs(tc.in); got != tc.out {
			t.Errorf("Abs(%d) = %d, expected %d", tc.in, got, tc.out)
		}
	}
}
