package spline

import (
	"fmt"
	"math"
)

// SplinePoint is a control point of a [HermiteSpline]: a position and the
// direction of the curve's tangent at that position.
//
// The tangent is stored as a unit vector whose x component is never negative,
// which keeps the curve a function of x. SplinePoint is immutable; use
// [SplinePoint.WithPosition] and [SplinePoint.WithTangent] to derive modified
// points.
type SplinePoint struct {
	x, y   float64
	tx, ty float64
}

// NewSplinePoint returns the point (x, y) with tangent direction ⟨tx, ty⟩.
// A negative tx is clamped to zero before the tangent is normalized.
//
// The tangent must not be the zero vector; doing so produces NaN components.
func NewSplinePoint(x, y, tx, ty float64) SplinePoint {
	tx = max(tx, 0)
	l := math.Sqrt(tx*tx + ty*ty)
	return SplinePoint{
		x:  x,
		y:  y,
		tx: tx / l,
		ty: ty / l,
	}
}

func (p SplinePoint) X() float64  { return p.x }
func (p SplinePoint) Y() float64  { return p.y }
func (p SplinePoint) Tx() float64 { return p.tx }
func (p SplinePoint) Ty() float64 { return p.ty }

// Position returns the point's position in value space.
func (p SplinePoint) Position() Point {
	return Point{X: p.x, Y: p.y}
}

// Tangent returns the point's unit tangent.
func (p SplinePoint) Tangent() Vec2 {
	return Vec2{X: p.tx, Y: p.ty}
}

// Slope returns dy/dx of the tangent.
func (p SplinePoint) Slope() float64 {
	return p.ty / p.tx
}

// WithPosition returns a copy of p moved to (x, y).
func (p SplinePoint) WithPosition(x, y float64) SplinePoint {
	p.x = x
	p.y = y
	return p
}

// WithTangent returns a copy of p with the tangent direction ⟨tx, ty⟩, subject
// to the same clamping as [NewSplinePoint].
func (p SplinePoint) WithTangent(tx, ty float64) SplinePoint {
	return NewSplinePoint(p.x, p.y, tx, ty)
}

func (p SplinePoint) String() string {
	return fmt.Sprintf("(%g, %g) ⟨%g, %g⟩", p.x, p.y, p.tx, p.ty)
}
