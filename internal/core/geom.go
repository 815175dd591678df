// Package core provides fundamental types shared by the simulation and the
// terminal platform. It has no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
// Overlap must be non-zero on both axes; rectangles that only share an
// edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Scale converts a pixel rectangle into the cell rectangle that covers it,
// given the pixel size of one cell. Any partially covered cell is included.
func (r Rect) Scale(cellW, cellH int) Rect {
	if cellW <= 0 || cellH <= 0 {
		return r
	}
	x0 := FloorDiv(r.X, cellW)
	y0 := FloorDiv(r.Y, cellH)
	x1 := CeilDiv(r.Right(), cellW)
	y1 := CeilDiv(r.Bottom(), cellH)
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// FloorDiv divides rounding towards negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// CeilDiv divides rounding towards positive infinity.
func CeilDiv(a, b int) int {
	return -FloorDiv(-a, b)
}

// Clamp restricts a value to be within [min, max].
// When max < min the lower bound wins.
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		if max < min {
			return min
		}
		return max
	}
	return val
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
