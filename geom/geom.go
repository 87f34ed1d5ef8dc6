// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle described by its origin (top-left
// corner) and its size. Negative sizes are not normalized; callers are
// expected to construct rectangles with non-negative dimensions.
type Rect struct {
	// X, Y is the origin (top-left corner).
	X, Y float64

	// W, H is the size.
	W, H float64
}

// NewRect creates a Rect from an origin and a size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromSize creates a Rect with origin (0, 0) and the given size.
func RectFromSize(w, h float64) Rect {
	return Rect{W: w, H: h}
}

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle's width and height.
func (r Rect) Size() (w, h float64) {
	return r.W, r.H
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside the rectangle.
// Points on the left/top edges are inside; right/bottom edges are outside,
// so adjacent rectangles do not both claim their shared edge.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
