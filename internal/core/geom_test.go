package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "charge inside submarine hull",
			a:        NewRect(300, 320, 30, 15),
			b:        NewRect(200, 312, 264, 72),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
		{
			name:     "zero width never intersects",
			a:        NewRect(5, 5, 0, 10),
			b:        NewRect(0, 0, 20, 20),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
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

func TestRectScale(t *testing.T) {
	tests := []struct {
		name     string
		in       Rect
		expected Rect
	}{
		{"aligned", NewRect(16, 32, 16, 32), NewRect(2, 2, 2, 2)},
		{"partial cells included", NewRect(4, 8, 8, 16), NewRect(0, 0, 2, 2)},
		{"negative origin floors", NewRect(-4, 0, 8, 16), NewRect(-1, 0, 2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Scale(8, 16)
			if got != tc.expected {
				t.Errorf("Scale() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestFloorCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, floor, ceil int
	}{
		{7, 2, 3, 4},
		{-7, 2, -4, -3},
		{8, 2, 4, 4},
		{0, 5, 0, 0},
		{-1, 8, -1, 0},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.a, tc.b); got != tc.floor {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.floor)
		}
		if got := CeilDiv(tc.a, tc.b); got != tc.ceil {
			t.Errorf("CeilDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.ceil)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},        // within range
		{-5, 0, 10, 0},       // below min
		{15, 0, 10, 10},      // above max
		{0, 0, 10, 0},        // at min
		{10, 0, 10, 10},      // at max
		{200, 130, 100, 130}, // inverted range keeps min
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
