package spline

import (
	"fmt"
)

// Rect is an axis-aligned rectangle. It is used for hit boxes and selection
// boxes, in value space as well as screen space.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromCenter returns a rectangle centered around center that extends
// by the half extents ext in each direction.
func NewRectFromCenter(center Point, ext Vec2) Rect {
	ext = ext.Abs()
	return Rect{
		X0: center.X - ext.X,
		Y0: center.Y - ext.Y,
		X1: center.X + ext.X,
		Y1: center.Y + ext.Y,
	}
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g]–[%g, %g]", r.X0, r.Y0, r.X1, r.Y1)
}

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() Point { return Point{min(r.X0, r.X1), min(r.Y0, r.Y1)} }

// Max returns the corner with the largest coordinates.
func (r Rect) Max() Point { return Point{max(r.X0, r.X1), max(r.Y0, r.Y1)} }

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies inside r. Unlike a half-open pixel
// rectangle, all four edges are part of the rectangle, so that a point exactly
// on the border of a hit box counts as a hit.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Transform maps both corners of r through aff and returns the enclosing
// rectangle. This is exact for the scale-and-translate transforms used to map
// between value space and screen space.
func (r Rect) Transform(aff Affine) Rect {
	return NewRectFromPoints(Pt(r.X0, r.Y0).Transform(aff), Pt(r.X1, r.Y1).Transform(aff))
}
