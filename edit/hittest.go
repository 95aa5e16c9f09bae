package edit

import (
	"math"

	"honnef.co/go/spline"
)

// Hit-testing happens in value space, but tolerances are specified in
// pixels so that they do not depend on zoom. A tolerance of n pixels becomes
// a box of half extents n/|scale| around the tested position.

// hitExtents converts a padding in pixels into value space half extents.
func hitExtents(scale spline.Vec2, padding float64) spline.Vec2 {
	return spline.Vec(padding/math.Abs(scale.X), padding/math.Abs(scale.Y))
}

func hits(target, pos spline.Point, ext spline.Vec2) bool {
	return spline.NewRectFromCenter(target, ext).Contains(pos)
}

// screenDistSq measures the distance between two value space points in
// pixels, so that "nearest" agrees with what the user sees.
func screenDistSq(a, b spline.Point, scale spline.Vec2) float64 {
	return a.Sub(b).MulComponents(scale).Hypot2()
}

// tangentHandleOffset returns the displacement from a point to its tangent
// handles. Handles are drawn length pixels away from the point along the
// tangent, in both directions.
func tangentHandleOffset(p spline.SplinePoint, scale spline.Vec2, length float64) spline.Vec2 {
	screen := p.Tangent().MulComponents(scale).Normalize().Mul(length)
	return screen.DivComponents(scale)
}

// hitTester resolves pointer positions to curves, points and tangent handles.
type hitTester struct {
	provider CurveProvider
	scale    spline.Vec2
	ext      spline.Vec2
}

func newHitTester(p CurveProvider, scale spline.Vec2, padding float64) hitTester {
	return hitTester{provider: p, scale: scale, ext: hitExtents(scale, padding)}
}

type candidate struct {
	addr      Address
	preferred bool
	distSq    float64
}

// better reports whether c should win over the current best. Preferred
// candidates beat others; among equals the closer one wins and ties go to
// the candidate found first.
func (c candidate) better(best candidate, found bool) bool {
	if !found {
		return true
	}
	if c.preferred != best.preferred {
		return c.preferred
	}
	return c.distSq < best.distSq
}

// nearestPoint returns the closest control point whose hit box contains pos,
// considering only points accepted by filter. Points accepted by prefer win
// over other hits regardless of distance. Either function may be nil.
func (ht hitTester) nearestPoint(pos spline.Point, filter, prefer func(Address) bool) (Address, bool) {
	var best candidate
	found := false
	for curve := range ht.provider.CurveCount() {
		if !ht.provider.IsEnabled(curve) {
			continue
		}
		for i, p := range ht.provider.Spline(curve).Points() {
			addr := PointAddress(curve, i)
			if filter != nil && !filter(addr) {
				continue
			}
			if !hits(p.Position(), pos, ht.ext) {
				continue
			}
			c := candidate{
				addr:      addr,
				preferred: prefer != nil && prefer(addr),
				distSq:    screenDistSq(p.Position(), pos, ht.scale),
			}
			if c.better(best, found) {
				best, found = c, true
			}
		}
	}
	return best.addr, found
}

// nearestTangentHandle returns the point among addrs whose tangent handle is
// closest to pos, if any handle is hit.
func (ht hitTester) nearestTangentHandle(pos spline.Point, addrs []Address, length float64) (Address, bool) {
	var best candidate
	found := false
	for _, addr := range addrs {
		if !ht.provider.IsEnabled(addr.Curve) {
			continue
		}
		s := ht.provider.Spline(addr.Curve)
		if addr.Point < 0 || addr.Point >= s.Count() {
			continue
		}
		p := s.Point(addr.Point)
		off := tangentHandleOffset(p, ht.scale, length)
		for _, handle := range [2]spline.Point{
			p.Position().Translate(off),
			p.Position().Translate(off.Negate()),
		} {
			if !hits(handle, pos, ht.ext) {
				continue
			}
			c := candidate{addr: addr, distSq: screenDistSq(handle, pos, ht.scale)}
			if c.better(best, found) {
				best, found = c, true
			}
		}
	}
	return best.addr, found
}

// nearestCurve returns the curve passing closest to pos, if any passes
// through the hit box around pos. Each curve is approximated by the line
// between its values at the left and right edges of the hit box.
func (ht hitTester) nearestCurve(pos spline.Point) (int, bool) {
	x0 := max(pos.X-ht.ext.X, 0)
	x1 := min(pos.X+ht.ext.X, 1)
	if x0 >= x1 {
		return 0, false
	}

	var best candidate
	found := false
	for curve := range ht.provider.CurveCount() {
		if !ht.provider.IsEnabled(curve) {
			continue
		}
		s := ht.provider.Spline(curve)
		l := spline.Line{
			P0: spline.Pt(x0, s.ValueAt(x0)),
			P1: spline.Pt(x1, s.ValueAt(x1)),
		}
		if l.IsNaN() {
			continue
		}
		_, t := l.Nearest(pos)
		q := l.Eval(t)
		if !hits(q, pos, ht.ext) {
			continue
		}
		c := candidate{addr: CurveAddress(curve), distSq: screenDistSq(q, pos, ht.scale)}
		if c.better(best, found) {
			best, found = c, true
		}
	}
	return best.addr.Curve, found
}

// pointsIn returns the addresses of all points of the given curves that lie
// inside r. A nil curves slice means every enabled curve.
func (ht hitTester) pointsIn(r spline.Rect, curves []int) []Address {
	if curves == nil {
		for curve := range ht.provider.CurveCount() {
			curves = append(curves, curve)
		}
	}
	var out []Address
	for _, curve := range curves {
		if !ht.provider.IsEnabled(curve) {
			continue
		}
		for i, p := range ht.provider.Spline(curve).Points() {
			if r.Contains(p.Position()) {
				out = append(out, PointAddress(curve, i))
			}
		}
	}
	return out
}
