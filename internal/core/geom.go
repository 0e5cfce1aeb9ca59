// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in world coordinates.
// Callers keep X1 < X2 and Y1 < Y2.
type Rect struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner
}

// NewRect creates a rectangle from its corner coordinates.
func NewRect(x1, y1, x2, y2 int) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// RectFromSize creates a rectangle anchored at (x, y) with the given size.
func RectFromSize(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width returns X2 - X1.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns Y2 - Y1.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Valid reports whether both axes have a positive extent.
func (r Rect) Valid() bool {
	return r.X1 < r.X2 && r.Y1 < r.Y2
}

// Overlaps reports whether the narrower of the two rectangles lies strictly
// inside the other on all four bounds. On a width tie the receiver is the
// inner candidate. Touching edges never count.
//
// This is a containment test, not a general intersection test: two boxes
// that merely cross each other do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	inner, outer := r, other
	if other.Width() < r.Width() {
		inner, outer = other, r
	}
	return inner.X1 > outer.X1 &&
		inner.Y1 > outer.Y1 &&
		inner.X2 < outer.X2 &&
		inner.Y2 < outer.Y2
}

// Intersects returns true if this rectangle shares any area with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X1 >= other.X2 || other.X1 >= r.X2 {
		return false
	}
	if r.Y1 >= other.Y2 || other.Y1 >= r.Y2 {
		return false
	}
	return true
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X1: r.X1 + dx, Y1: r.Y1 + dy, X2: r.X2 + dx, Y2: r.Y2 + dy}
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
