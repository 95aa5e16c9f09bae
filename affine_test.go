package spline

import (
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Scale(1, -1)), Pt(3, -4), epsilon)
	assertNear(t, p.Transform(Scale(2, 3).ThenTranslate(Vec(1, 1))), Pt(7, 13), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	// The shape of a value-to-screen transform: x scaled by the plot width,
	// y flipped and scaled by the zoom.
	a := Scale(500, -100).ThenTranslate(Vec(60, 230))
	aInv := a.Invert()

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(0.25, -3)} {
		assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
		assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
	}
	if d := a.Determinant(); d != -50000 {
		t.Errorf("got determinant %v, want -50000", d)
	}
	diff(t, a.TransformVec(Vec(0.1, 0.2)), Vec(50, -20))
	if v := aInv.TransformVec(Vec(50, -20)); v.Sub(Vec(0.1, 0.2)).Hypot() > epsilon {
		t.Errorf("got %s, want ⟨0.1, 0.2⟩", v)
	}
}
