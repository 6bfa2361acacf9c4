// Package core provides fundamental types and utilities shared by the kitchen
// simulation and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Rect represents an axis-aligned box in playfield pixels.
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the exact center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// ClampInside keeps r within bounds, preserving its size.
func (r Rect) ClampInside(bounds Rect) Rect {
	r.X = Clamp(r.X, bounds.X, Max(bounds.X, bounds.Right()-r.W))
	r.Y = Clamp(r.Y, bounds.Y, Max(bounds.Y, bounds.Bottom()-r.H))
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// ProximityMode selects how the distance between two rectangles is measured.
type ProximityMode int

const (
	// ProximityCenter measures between rectangle centers.
	ProximityCenter ProximityMode = iota
	// ProximityBounds measures between the nearest edges; overlap is zero.
	ProximityBounds
)

// String returns the config spelling of the mode.
func (m ProximityMode) String() string {
	switch m {
	case ProximityCenter:
		return "center"
	case ProximityBounds:
		return "bounds"
	default:
		return "unknown"
	}
}

// ParseProximityMode parses "center" or "bounds". Empty means center.
func ParseProximityMode(s string) (ProximityMode, error) {
	switch s {
	case "", "center":
		return ProximityCenter, nil
	case "bounds":
		return ProximityBounds, nil
	default:
		return ProximityCenter, fmt.Errorf("core: unknown proximity mode %q", s)
	}
}

// DefaultNearThreshold is the proximity radius used when none is configured.
const DefaultNearThreshold = 80.0

// CenterDistance is the Euclidean distance between the centers of a and b.
func CenterDistance(a, b Rect) float64 {
	ax, ay := a.Center()
	bx, by := b.Center()
	return math.Hypot(ax-bx, ay-by)
}

// BoundsDistance is the Euclidean distance between the nearest edges of a and
// b. Each axis gap is clamped at zero, so overlapping rectangles yield 0.
func BoundsDistance(a, b Rect) float64 {
	dx := Max(Max(b.X-a.Right(), a.X-b.Right()), 0)
	dy := Max(Max(b.Y-a.Bottom(), a.Y-b.Bottom()), 0)
	return math.Hypot(float64(dx), float64(dy))
}

// Distance measures a to b using the given mode.
func Distance(a, b Rect, mode ProximityMode) float64 {
	if mode == ProximityBounds {
		return BoundsDistance(a, b)
	}
	return CenterDistance(a, b)
}

// IsNear reports whether a and b are strictly closer than threshold.
func IsNear(a, b Rect, threshold float64, mode ProximityMode) bool {
	return Distance(a, b, mode) < threshold
}

// Within reports whether the center distance of a and b is at most threshold.
// Item scans (pickup, placement) are inclusive of the threshold.
func Within(a, b Rect, threshold float64) bool {
	return CenterDistance(a, b) <= threshold
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
