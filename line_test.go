package spline

import (
	"math"
	"testing"
)

func TestLineIsNaN(t *testing.T) {
	if (Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}).IsNaN() {
		t.Error("line is NaN but shouldn't be")
	}
	if !(Line{Pt(0.0, 0.0), Pt(1.0, math.NaN())}).IsNaN() {
		t.Error("line isn't NaN but should be")
	}
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	tests := []struct {
		pt     Point
		distSq float64
		t      float64
	}{
		{Pt(5, 3), 9, 0.5},
		{Pt(-4, 3), 25, 0},  // before the start
		{Pt(13, -4), 25, 1}, // after the end
		{Pt(2.5, 0), 0, 0.25},
	}
	for _, tt := range tests {
		distSq, tt2 := l.Nearest(tt.pt)
		if math.Abs(distSq-tt.distSq) > 1e-12 || math.Abs(tt2-tt.t) > 1e-12 {
			t.Errorf("Nearest(%s) = %v, %v; want %v, %v", tt.pt, distSq, tt2, tt.distSq, tt.t)
		}
	}
}
