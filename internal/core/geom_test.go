package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRectF(0, 0, 20, 20),
			b:        NewRectF(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.5, 9.5, 10, 10),
			expected: true,
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

func TestRectFCenter(t *testing.T) {
	r := NewRectF(10, 20, 30, 40)

	if r.CenterX() != 25 {
		t.Errorf("CenterX() = %f, expected 25", r.CenterX())
	}
	if r.CenterY() != 40 {
		t.Errorf("CenterY() = %f, expected 40", r.CenterY())
	}
	if r.Right() != 40 {
		t.Errorf("Right() = %f, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %f, expected 60", r.Bottom())
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	c := NewRect(10, 0, 10, 10)

	if !a.Intersects(b) {
		t.Error("Overlapping rects should intersect")
	}
	if a.Intersects(c) {
		t.Error("Adjacent rects should not intersect")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
