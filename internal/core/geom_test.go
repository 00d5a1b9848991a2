package core

import (
	"math"
	"testing"
)

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
			name:     "adjacent horizontal (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRectF(0, 0, 20, 20),
			b:        NewRectF(5, 5, 5, 5),
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

func TestRectFContains(t *testing.T) {
	r := NewRectF(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(15, 15), true},
		{"top-left corner", V(10, 10), true},
		{"bottom-right edge (exclusive)", V(30, 25), false},
		{"outside left", V(5, 15), false},
		{"outside right", V(35, 15), false},
		{"outside top", V(15, 5), false},
		{"outside bottom", V(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestRectFIntersectsCircle(t *testing.T) {
	r := NewRectF(0, 0, 64, 64)

	tests := []struct {
		name     string
		c        Vec2
		radius   float64
		expected bool
	}{
		{"center inside", V(32, 32), 5, true},
		{"overlapping right edge", V(70, 32), 10, true},
		{"touching right edge", V(74, 32), 10, false},
		{"near corner but outside", V(72, 72), 10, false},
		{"overlapping corner", V(70, 70), 10, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.IntersectsCircle(tc.c, tc.radius); got != tc.expected {
				t.Errorf("IntersectsCircle(%v, %v) = %v, expected %v", tc.c, tc.radius, got, tc.expected)
			}
		})
	}
}

func TestVec2(t *testing.T) {
	v := V(3, 4)
	if v.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", v.Len())
	}

	n := v.Normalize()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Normalize() length = %f, expected 1", n.Len())
	}

	if !(Vec2{}).Normalize().IsZero() {
		t.Error("Normalize of zero vector should stay zero")
	}

	if d := V(1, 1).Dist(V(4, 5)); d != 5 {
		t.Errorf("Dist() = %f, expected 5", d)
	}

	if got := V(1, 2).Add(V(3, 4)).Sub(V(1, 1)).Scale(2); got != V(6, 10) {
		t.Errorf("Add/Sub/Scale chain = %v, expected (6, 10)", got)
	}
}

func TestRectFCenter(t *testing.T) {
	r := NewRectF(128, 128, 256, 192)
	if c := r.Center(); c != V(256, 224) {
		t.Errorf("Center() = %v, expected (256, 224)", c)
	}
	if r.Right() != 384 || r.Bottom() != 320 {
		t.Errorf("edges = (%f, %f), expected (384, 320)", r.Right(), r.Bottom())
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
