package main

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/spline"
)

// document is the on-disk form of a curve:
//
//	[[points]]
//	x = 0.0
//	y = 0.0
//	tx = 0.7071
//	ty = 0.7071
type document struct {
	Points []pointRecord `toml:"points"`
}

type pointRecord struct {
	X  float64 `toml:"x"`
	Y  float64 `toml:"y"`
	Tx float64 `toml:"tx"`
	Ty float64 `toml:"ty"`
}

func readSpline(r io.Reader) (spline.HermiteSpline, error) {
	var doc document
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return spline.HermiteSpline{}, fmt.Errorf("decoding curve: %w", err)
	}
	points := make([]spline.SplinePoint, len(doc.Points))
	for i, p := range doc.Points {
		if p.Tx == 0 && p.Ty == 0 {
			return spline.HermiteSpline{}, fmt.Errorf("point %d: %w", i, spline.ErrTangent)
		}
		points[i] = spline.NewSplinePoint(p.X, p.Y, p.Tx, p.Ty)
	}
	return spline.NewHermiteSpline(points...)
}

func writeSpline(w io.Writer, s spline.HermiteSpline) error {
	doc := document{Points: make([]pointRecord, 0, s.Count())}
	for _, p := range s.Points() {
		doc.Points = append(doc.Points, pointRecord{X: p.X(), Y: p.Y(), Tx: p.Tx(), Ty: p.Ty()})
	}
	return toml.NewEncoder(w).Encode(doc)
}
