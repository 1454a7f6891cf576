package model

import "math"

// Rect is an axis-aligned rectangle in top-left-origin page space.
type Rect struct {
	X1, Y1 float64 // Left, top
	X2, Y2 float64 // Right, bottom
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// IsEmpty returns true if the rectangle has no area
func (r Rect) IsEmpty() bool {
	return r.X2 <= r.X1 || r.Y2 <= r.Y1
}

// Union returns the smallest rectangle containing both rectangles.
// An empty receiver is ignored so Union can be folded from a zero Rect.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		X1: math.Min(r.X1, other.X1),
		Y1: math.Min(r.Y1, other.Y1),
		X2: math.Max(r.X2, other.X2),
		Y2: math.Max(r.Y2, other.Y2),
	}
}

// Intersects checks if two rectangles overlap
func (r Rect) Intersects(other Rect) bool {
	return !(r.X2 < other.X1 ||
		r.X1 > other.X2 ||
		r.Y2 < other.Y1 ||
		r.Y1 > other.Y2)
}

// HorizontalSpace is an empty vertical band between two horizontally
// adjacent things, usually two columns.
type HorizontalSpace struct {
	X1, X2 float64
}

// Width returns the width of the band. It is negative for an inverted band.
func (s HorizontalSpace) Width() float64 {
	return s.X2 - s.X1
}

// Crossed reports whether the fragment starts or ends strictly inside the
// band. A fragment that exactly touches an edge does not cross it.
func (s HorizontalSpace) Crossed(f Fragment) bool {
	return (f.X1 > s.X1 && f.X1 < s.X2) || (f.X2 > s.X1 && f.X2 < s.X2)
}

// CrossedByAny reports whether any of the fragments crosses the band.
func (s HorizontalSpace) CrossedByAny(fragments []Fragment) bool {
	for _, f := range fragments {
		if s.Crossed(f) {
			return true
		}
	}
	return false
}
