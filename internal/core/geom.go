// Package core provides fundamental types shared by the simulation and the
// platform layer. It has no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units. World space is y-up with the origin
// at the centre of the play area.
type Vec2 struct {
	X, Y float64
}

// V constructs a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Box is an axis-aligned bounding box described by its centre and
// half-extents.
type Box struct {
	Center Vec2
	Half   Vec2
}

// NewBox creates a box centred on c with half-extents h.
func NewBox(c, h Vec2) Box {
	return Box{Center: c, Half: h}
}

// Top returns the largest y covered by the box.
func (b Box) Top() float64 {
	return b.Center.Y + b.Half.Y
}

// Bottom returns the smallest y covered by the box.
func (b Box) Bottom() float64 {
	return b.Center.Y - b.Half.Y
}

// Left returns the smallest x covered by the box.
func (b Box) Left() float64 {
	return b.Center.X - b.Half.X
}

// Right returns the largest x covered by the box.
func (b Box) Right() float64 {
	return b.Center.X + b.Half.X
}

// Intersects reports whether the two boxes overlap on both axes.
// Touching edges do not count as overlap.
func (b Box) Intersects(o Box) bool {
	return math.Abs(b.Center.X-o.Center.X) < b.Half.X+o.Half.X &&
		math.Abs(b.Center.Y-o.Center.Y) < b.Half.Y+o.Half.Y
}

// Rect represents an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
