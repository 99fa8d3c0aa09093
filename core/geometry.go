package core

import "math"

// Point is a position in viewport coordinates
// The evasion and celebration logic works in floats, the terminal host rounds to cells
type Point struct {
	X, Y float64
}

// Cell rounds the point to the nearest terminal cell
func (p Point) Cell() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Size is a width/height pair in viewport coordinates
type Size struct {
	W, H float64
}

// Rect is a cell-aligned rectangle used for layout and hit testing
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the middle cell of the rectangle
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// ClampRange returns [lo, hi] with hi raised to lo when the range is inverted
// A viewport smaller than control plus padding collapses to the single point lo
func ClampRange(lo, hi float64) (float64, float64) {
	if hi < lo {
		return lo, lo
	}
	return lo, hi
}
