package core

import "testing"

func TestBoxContainsPoint(t *testing.T) {
	b := NewBox(10, 20, 100, 50)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner (inclusive)", 110, 70, true},
		{"top edge", 60, 20, true},
		{"just left", 9.99, 40, false},
		{"just right", 110.01, 40, false},
		{"just above", 50, 19.5, false},
		{"just below", 50, 70.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := b.ContainsPoint(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("ContainsPoint(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", b.Bottom())
	}

	c := b.Center()
	if c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = %+v, expected {15 17.5}", c)
	}
}

func TestBoxGrow(t *testing.T) {
	b := NewBox(100, 100, 40, 40).Grow(20, 20)
	expected := NewBox(80, 80, 80, 80)
	if b != expected {
		t.Errorf("Grow() = %+v, expected %+v", b, expected)
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

func TestRoundTo(t *testing.T) {
	tests := []struct {
		val      float64
		places   int
		expected float64
	}{
		{1.24, 1, 1.2},
		{1.25, 1, 1.3},
		{12.96, 1, 13.0},
		{0, 1, 0},
	}

	for _, tc := range tests {
		result := RoundTo(tc.val, tc.places)
		if result != tc.expected {
			t.Errorf("RoundTo(%v, %d) = %v, expected %v", tc.val, tc.places, result, tc.expected)
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
