package pdfview

import "math"

// Rect represents an axis-aligned rectangle with X0 <= X1 and Y0 <= Y1
// after normalization. It is used both for hit testing and for
// highlight/annotation geometry.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// RectFromPoints creates a rectangle from two corner points.
// The coordinates are normalized so X0 <= X1 and Y0 <= Y1.
func RectFromPoints(p, q Point) Rect {
	return Rect{
		X0: math.Min(p.X, q.X),
		Y0: math.Min(p.Y, q.Y),
		X1: math.Max(p.X, q.X),
		Y1: math.Max(p.Y, q.Y),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// IsEmpty reports whether the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Intersects reports whether r and other overlap. The test is open:
// rectangles that merely touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X0 < other.X1 && r.X1 > other.X0 &&
		r.Y0 < other.Y1 && r.Y1 > other.Y0
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Scaled returns the rectangle with all coordinates divided by scale.
// It converts display-space geometry to document space.
func (r Rect) Scaled(scale float64) Rect {
	return Rect{
		X0: r.X0 / scale,
		Y0: r.Y0 / scale,
		X1: r.X1 / scale,
		Y1: r.Y1 / scale,
	}
}

// PageRect is a rectangle tagged with the page it belongs to.
type PageRect struct {
	PageIndex int
	Rect      Rect
}
