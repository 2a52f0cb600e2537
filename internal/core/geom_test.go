package core

import (
	"math"
	"testing"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edge (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.9, 9.9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxSpansY(t *testing.T) {
	b := NewBox(0, 100, 10, 50)

	tests := []struct {
		name        string
		top, bottom float64
		expected    bool
	}{
		{"band inside", 110, 120, true},
		{"band touching top", 80, 100, true},
		{"band touching bottom", 150, 170, true},
		{"band above", 60, 99, false},
		{"band below", 151, 170, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.SpansY(tc.top, tc.bottom); got != tc.expected {
				t.Errorf("SpansY(%v, %v) = %v, expected %v", tc.top, tc.bottom, got, tc.expected)
			}
		})
	}
}

func TestCenteredBox(t *testing.T) {
	b := CenteredBox(50, 40, 16)
	if b.X != 42 || b.Y != 32 || b.W != 16 || b.H != 16 {
		t.Errorf("CenteredBox = %+v, expected {42 32 16 16}", b)
	}
	if b.CenterX() != 50 {
		t.Errorf("CenterX() = %v, expected 50", b.CenterX())
	}
	if b.Right() != 58 || b.Bottom() != 48 {
		t.Errorf("Right/Bottom = %v/%v, expected 58/48", b.Right(), b.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampInt(t *testing.T) {
	if ClampInt(-1, 0, 3) != 0 || ClampInt(4, 0, 3) != 3 || ClampInt(2, 0, 3) != 2 {
		t.Error("ClampInt returned a value outside [0, 3]")
	}
}

func TestSanitize(t *testing.T) {
	if Sanitize(math.NaN()) != 0 {
		t.Error("Sanitize(NaN) should be 0")
	}
	if Sanitize(math.Inf(1)) != 0 || Sanitize(math.Inf(-1)) != 0 {
		t.Error("Sanitize(Inf) should be 0")
	}
	if Sanitize(-3.5) != -3.5 {
		t.Error("Sanitize should pass finite values through")
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
