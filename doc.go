// Package spline provides the data model for editing one-dimensional animation
// curves: piecewise cubic Hermite splines that map a normalized x ∈ [0, 1]
// (typically the lifetime of a particle or an effect) to an unbounded y.
//
// # Splines
//
// [HermiteSpline] is an immutable, ordered list of [SplinePoint] values. Each
// point carries a position and a unit tangent. Consecutive points define a
// cubic segment; see [HermiteSpline.Eval] for the exact basis. Editing methods
// such as [HermiteSpline.InsertPoint], [HermiteSpline.RemovePoint],
// [HermiteSpline.SetPosition] and [HermiteSpline.SetTangent] return new splines.
// None of them fail: requests that would violate an invariant are either
// clamped into range or refused, in which case the original spline is
// returned together with false.
//
// # Geometry
//
// The package also contains the small set of 2D primitives the editor needs:
// [Point] and [Vec2] for positions and directions, [Rect] for hit boxes and
// selection boxes, [Line] for projecting the pointer onto a curve, and
// [Affine] for mapping between value space and screen space.
//
// # Editing
//
// Interactive editing (hit-testing, selection, drag gestures and undo) lives
// in the edit and undo sub-packages. Logging for all of them is configured
// with [SetLogger].
package spline
