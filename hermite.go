package spline

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const (
	// MinPointDistance is the smallest x distance allowed between two
	// neighbouring points of a spline.
	MinPointDistance = 0.01

	// MaxTangentAngle is the largest angle, in radians, between a tangent and
	// the x axis. A vertical tangent would have an infinite slope.
	MaxTangentAngle = math.Pi/2 - 0.01

	// ExtremeSubdivisions is the number of samples per segment taken by
	// [HermiteSpline.ExtremeValues].
	ExtremeSubdivisions = 32
)

var (
	ErrTooFewPoints = errors.New("spline needs at least two points")
	ErrEndpoints    = errors.New("spline must span x = 0 to x = 1")
	ErrPointSpacing = errors.New("spline points are too close together")
	ErrTangent      = errors.New("spline point has an invalid tangent")
	ErrNonFinite    = errors.New("spline point has a non-finite coordinate")
)

// spacingTolerance absorbs rounding in stored x coordinates that were clamped
// to exactly MinPointDistance from a neighbour.
const spacingTolerance = 1e-9

// HermiteSpline is a piecewise cubic Hermite curve mapping x ∈ [0, 1] to y.
//
// A spline has at least two points, sorted by strictly increasing x, with the
// first point at x = 0 and the last at x = 1. Neighbouring points are at least
// [MinPointDistance] apart.
//
// HermiteSpline is a value type. Editing methods return a new spline and never
// modify the receiver, which makes it safe to hand a spline to a renderer while
// computing its successor. The zero value has no points and is not a valid
// spline; use [DefaultHermiteSpline] or [NewHermiteSpline].
type HermiteSpline struct {
	points   []SplinePoint
	userData any
}

// DefaultHermiteSpline returns the spline a new animated property starts out
// with: a ramp from (0, 0) to (1, 1).
func DefaultHermiteSpline() HermiteSpline {
	return HermiteSpline{
		points: []SplinePoint{
			NewSplinePoint(0, 0, 0.5, 0.5),
			NewSplinePoint(1, 1, 0.5, 0.5),
		},
	}
}

// NewHermiteSpline returns a spline made of points, which must satisfy the
// invariants described on [HermiteSpline]. It is meant for building splines
// from external data; interactive editing goes through the editing methods,
// which cannot produce invalid splines.
func NewHermiteSpline(points ...SplinePoint) (HermiteSpline, error) {
	if len(points) < 2 {
		return HermiteSpline{}, fmt.Errorf("got %d points: %w", len(points), ErrTooFewPoints)
	}
	for i, p := range points {
		if pos := p.Position(); pos.IsNaN() || pos.IsInf() {
			return HermiteSpline{}, fmt.Errorf("point %d at %s: %w", i, pos, ErrNonFinite)
		}
		if p.Tangent().IsNaN() || p.Tangent().IsInf() {
			return HermiteSpline{}, fmt.Errorf("point %d: %w", i, ErrTangent)
		}
	}
	first, last := points[0], points[len(points)-1]
	if first.x != 0 || last.x != 1 {
		return HermiteSpline{}, fmt.Errorf("got [%g, %g]: %w", first.x, last.x, ErrEndpoints)
	}
	for i := 1; i < len(points); i++ {
		prev, p := points[i-1], points[i]
		if !(p.x-prev.x >= MinPointDistance-spacingTolerance) {
			return HermiteSpline{}, fmt.Errorf("points %d and %d at x = %g and %g: %w",
				i-1, i, prev.x, p.x, ErrPointSpacing)
		}
	}
	return HermiteSpline{points: slices.Clone(points)}, nil
}

// Count returns the number of control points.
func (s HermiteSpline) Count() int {
	return len(s.points)
}

// SegmentCount returns the number of cubic segments, which is one less than
// the number of points.
func (s HermiteSpline) SegmentCount() int {
	return len(s.points) - 1
}

// Point returns control point i.
func (s HermiteSpline) Point(i int) SplinePoint {
	return s.points[i]
}

// Points returns an iterator over the control points and their indices.
func (s HermiteSpline) Points() iter.Seq2[int, SplinePoint] {
	return func(yield func(int, SplinePoint) bool) {
		for i, p := range s.points {
			if !yield(i, p) {
				return
			}
		}
	}
}

// UserData returns the opaque value attached with [HermiteSpline.WithUserData].
func (s HermiteSpline) UserData() any {
	return s.userData
}

// WithUserData returns a copy of s carrying data. The spline itself never
// looks at it; it is a slot for the host's bookkeeping and survives edits.
func (s HermiteSpline) WithUserData(data any) HermiteSpline {
	s.userData = data
	return s
}

// Eval evaluates segment at the parameter t ∈ [0, 1].
//
// x is interpolated linearly between the segment's end points. y uses the
// cubic Hermite basis with the stored slopes scaled by the segment's width, so
// that dy/dx stays continuous where two segments meet.
func (s HermiteSpline) Eval(segment int, t float64) Point {
	p0, p1 := s.points[segment], s.points[segment+1]
	dx := p1.x - p0.x
	m0 := p0.Slope() * dx
	m1 := p1.Slope() * dx

	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return Point{
		X: p0.x + t*dx,
		Y: h00*p0.y + h10*m0 + h01*p1.y + h11*m1,
	}
}

// TangentAt returns the unit tangent ⟨1, dy/dx⟩ of segment at the parameter
// t ∈ [0, 1].
func (s HermiteSpline) TangentAt(segment int, t float64) Vec2 {
	p0, p1 := s.points[segment], s.points[segment+1]
	dx := p1.x - p0.x
	m0 := p0.Slope() * dx
	m1 := p1.Slope() * dx

	t2 := t * t
	h00 := 6*t2 - 6*t
	h10 := 3*t2 - 4*t + 1
	h01 := -6*t2 + 6*t
	h11 := 3*t2 - 2*t
	dydt := h00*p0.y + h10*m0 + h01*p1.y + h11*m1
	return Vec2{X: 1, Y: dydt / dx}.Normalize()
}

// SegmentAt returns the segment whose half-open range [x0, x1) contains x. The
// last segment also contains x = 1. It reports false for x outside [0, 1].
func (s HermiteSpline) SegmentAt(x float64) (int, bool) {
	for i := range s.SegmentCount() {
		if x >= s.points[i].x && x < s.points[i+1].x {
			return i, true
		}
	}
	if n := len(s.points); n >= 2 && x == s.points[n-1].x {
		return n - 2, true
	}
	return 0, false
}

// param returns the segment containing x and the segment parameter of x.
func (s HermiteSpline) param(x float64) (int, float64, bool) {
	seg, ok := s.SegmentAt(x)
	if !ok {
		return 0, 0, false
	}
	x0, x1 := s.points[seg].x, s.points[seg+1].x
	return seg, (x - x0) / (x1 - x0), true
}

// ValueAt returns the curve's y at x. x is clamped to [0, 1].
func (s HermiteSpline) ValueAt(x float64) float64 {
	x = min(max(x, 0), 1)
	seg, t, ok := s.param(x)
	if !ok {
		return math.NaN()
	}
	return s.Eval(seg, t).Y
}

// InsertPoint returns a spline with a new point at x. The point lies on the
// existing curve and takes the curve's tangent there, so the shape of the
// curve does not change.
//
// It reports false, and returns s unchanged, if x is outside [0, 1] or closer
// than [MinPointDistance] to an existing point.
func (s HermiteSpline) InsertPoint(x float64) (HermiteSpline, bool) {
	seg, t, ok := s.param(x)
	if !ok {
		return s, false
	}
	if x-s.points[seg].x < MinPointDistance || s.points[seg+1].x-x < MinPointDistance {
		return s, false
	}
	pos := s.Eval(seg, t)
	tan := s.TangentAt(seg, t)
	p := NewSplinePoint(x, pos.Y, tan.X, tan.Y)
	return HermiteSpline{
		points:   slices.Insert(slices.Clone(s.points), seg+1, p),
		userData: s.userData,
	}, true
}

// RemovePoint returns a spline without point i. The end points cannot be
// removed; for them it reports false and returns s unchanged.
func (s HermiteSpline) RemovePoint(i int) (HermiteSpline, bool) {
	if i <= 0 || i >= len(s.points)-1 {
		return s, false
	}
	return HermiteSpline{
		points:   slices.Delete(slices.Clone(s.points), i, i+1),
		userData: s.userData,
	}, true
}

// SetPosition returns a spline with point i moved to (x, y). The first and
// last points keep x = 0 and x = 1. Interior points are kept at least
// [MinPointDistance] away from their neighbours. y is not constrained.
func (s HermiteSpline) SetPosition(i int, x, y float64) HermiteSpline {
	switch i {
	case 0:
		x = 0
	case len(s.points) - 1:
		x = 1
	default:
		lo := s.points[i-1].x + MinPointDistance
		hi := s.points[i+1].x - MinPointDistance
		x = min(max(x, lo), hi)
	}
	return s.with(i, s.points[i].WithPosition(x, y))
}

// SetTangent returns a spline with the tangent of point i set to ⟨tx, ty⟩.
// The tangent is clamped and normalized like in [NewSplinePoint]; callers
// that derive tangents from user input should pass them through
// [ClampTangent] first.
func (s HermiteSpline) SetTangent(i int, tx, ty float64) HermiteSpline {
	return s.with(i, s.points[i].WithTangent(tx, ty))
}

func (s HermiteSpline) with(i int, p SplinePoint) HermiteSpline {
	points := slices.Clone(s.points)
	points[i] = p
	return HermiteSpline{points: points, userData: s.userData}
}

// ExtremeValues returns the smallest and largest y of the curve, sampled at
// [ExtremeSubdivisions] steps per segment. The result is meant for framing the
// curve in a view, not as exact extrema.
func (s HermiteSpline) ExtremeValues() (minY, maxY float64) {
	if s.SegmentCount() < 1 {
		return math.NaN(), math.NaN()
	}
	ys := make([]float64, 0, s.SegmentCount()*(ExtremeSubdivisions+1))
	for seg := range s.SegmentCount() {
		for j := range ExtremeSubdivisions + 1 {
			ys = append(ys, s.Eval(seg, float64(j)/ExtremeSubdivisions).Y)
		}
	}
	return floats.Min(ys), floats.Max(ys)
}

// Bounds returns the rectangle spanning x ∈ [0, 1] and the curve's
// [HermiteSpline.ExtremeValues].
func (s HermiteSpline) Bounds() Rect {
	lo, hi := s.ExtremeValues()
	return Rect{X0: 0, Y0: lo, X1: 1, Y1: hi}
}

// Samples returns an iterator over points along the whole curve, taking
// subdivisions steps per segment. The first point is yielded once; shared
// points between segments are not repeated.
func (s HermiteSpline) Samples(subdivisions int) iter.Seq[Point] {
	subdivisions = max(subdivisions, 1)
	return func(yield func(Point) bool) {
		if len(s.points) == 0 {
			return
		}
		if !yield(s.points[0].Position()) {
			return
		}
		for seg := range s.SegmentCount() {
			for j := 1; j <= subdivisions; j++ {
				if !yield(s.Eval(seg, float64(j)/float64(subdivisions))) {
					return
				}
			}
		}
	}
}

func (s HermiteSpline) String() string {
	var sb strings.Builder
	sb.WriteString("HermiteSpline{")
	for i, p := range s.points {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// ClampTangent turns an arbitrary direction into one that can be stored in a
// [SplinePoint]: it is flipped to point towards positive x, normalized, and
// kept within [MaxTangentAngle] of the x axis. v must not be the zero vector.
//
// The limit applies to the angle, so a vertical direction becomes
// ⟨cos(MaxTangentAngle), ±sin(MaxTangentAngle)⟩, a steep tangent with a small
// positive x. It does not cap |y| at cos(MaxTangentAngle), which would flatten
// every tangent steeper than about half a degree.
func ClampTangent(v Vec2) Vec2 {
	if v.X < 0 {
		v = v.Negate()
	}
	th := min(max(v.Angle(), -MaxTangentAngle), MaxTangentAngle)
	return VecFromAngle(th)
}
