package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// splineOpts lets cmp look inside splines and their points.
var splineOpts = cmp.AllowUnexported(HermiteSpline{}, SplinePoint{})

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func mustSpline(t *testing.T, points ...SplinePoint) HermiteSpline {
	t.Helper()
	s, err := NewHermiteSpline(points...)
	if err != nil {
		t.Fatal(err)
	}
	return s
}
