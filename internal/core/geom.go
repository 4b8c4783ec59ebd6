// Package core provides the screen, geometry, input and runtime types shared
// by the game and its terminal front end.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an axis-aligned box, in board units or screen cells.
// X and Y are the top-left corner; the box covers [X, X+W) by [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first x past the box.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first y past the box.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the middle cell, rounded towards the top-left.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether two boxes share any area.
// Boxes that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Contains reports whether the point (x, y) lies inside the box.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}
