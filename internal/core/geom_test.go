package core

import (
	"math"
	"testing"
)

func TestRectCenter(t *testing.T) {
	r := NewRect(5, 10, 21, 15)
	cx, cy := r.Center()
	if cx != 15.5 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15.5, 17.5)", cx, cy)
	}
}

func TestCenterDistance(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(30, 40, 10, 10)
	if d := CenterDistance(a, b); d != 50 {
		t.Errorf("CenterDistance() = %v, expected 50", d)
	}
}

func TestBoundsDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected float64
	}{
		{"overlap is zero", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), 0},
		{"touching is zero", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), 0},
		{"horizontal gap", NewRect(0, 0, 10, 10), NewRect(25, 0, 10, 10), 15},
		{"vertical gap", NewRect(0, 0, 10, 10), NewRect(0, 30, 10, 10), 20},
		{"diagonal gap", NewRect(0, 0, 10, 10), NewRect(13, 14, 10, 10), 5},
		{"b left of a", NewRect(50, 0, 10, 10), NewRect(0, 0, 10, 10), 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BoundsDistance(tc.a, tc.b); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("BoundsDistance() = %v, expected %v", got, tc.expected)
			}
			if got := BoundsDistance(tc.b, tc.a); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("BoundsDistance() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIsNearIsStrict(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(30, 40, 10, 10) // center distance exactly 50

	if IsNear(a, b, 50, ProximityCenter) {
		t.Error("IsNear should be false at exactly the threshold")
	}
	if !IsNear(a, b, 50.01, ProximityCenter) {
		t.Error("IsNear should be true just above the distance")
	}
	if !Within(a, b, 50) {
		t.Error("Within should include the threshold")
	}
}

func TestIsNearBoundsMode(t *testing.T) {
	big := NewRect(0, 0, 200, 200)
	small := NewRect(250, 0, 10, 10)

	// Centers are far apart but the edges are only 50 apart.
	if IsNear(big, small, 80, ProximityCenter) {
		t.Error("center mode should not consider these near")
	}
	if !IsNear(big, small, 80, ProximityBounds) {
		t.Error("bounds mode should consider these near")
	}
}

func TestParseProximityMode(t *testing.T) {
	for in, want := range map[string]ProximityMode{"": ProximityCenter, "center": ProximityCenter, "bounds": ProximityBounds} {
		got, err := ParseProximityMode(in)
		if err != nil || got != want {
			t.Errorf("ParseProximityMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseProximityMode("edge"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestClampInside(t *testing.T) {
	bounds := NewRect(0, 0, 100, 100)
	r := NewRect(95, -5, 20, 20).ClampInside(bounds)
	if r.X != 80 || r.Y != 0 {
		t.Errorf("ClampInside() = %v, expected (80,0)", r)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
