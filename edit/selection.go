package edit

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// WholeCurve is the Point value of an [Address] that refers to a curve as a
// whole rather than to one of its points.
const WholeCurve = -1

// Address identifies a selectable element: either a whole curve or a single
// control point of a curve.
type Address struct {
	Curve int
	Point int
}

// CurveAddress returns the address of curve as a whole.
func CurveAddress(curve int) Address {
	return Address{Curve: curve, Point: WholeCurve}
}

// PointAddress returns the address of a control point.
func PointAddress(curve, point int) Address {
	return Address{Curve: curve, Point: point}
}

// IsCurve reports whether a refers to a whole curve.
func (a Address) IsCurve() bool {
	return a.Point == WholeCurve
}

func (a Address) String() string {
	if a.IsCurve() {
		return fmt.Sprintf("[%d]", a.Curve)
	}
	return fmt.Sprintf("[%d %d]", a.Curve, a.Point)
}

func compareAddress(a, b Address) int {
	if c := cmp.Compare(a.Curve, b.Curve); c != 0 {
		return c
	}
	return cmp.Compare(a.Point, b.Point)
}

// Selection is an immutable set of addresses, ordered by curve and then by
// point, with whole-curve entries sorting before the curve's points. The zero
// value is the empty selection.
type Selection struct {
	addrs []Address
}

// NewSelection returns a selection containing addrs. Duplicates are dropped.
func NewSelection(addrs ...Address) Selection {
	if len(addrs) == 0 {
		return Selection{}
	}
	s := slices.Clone(addrs)
	slices.SortFunc(s, compareAddress)
	return Selection{addrs: slices.Compact(s)}
}

func (s Selection) Len() int      { return len(s.addrs) }
func (s Selection) IsEmpty() bool { return len(s.addrs) == 0 }

// Contains reports whether a is part of the selection.
func (s Selection) Contains(a Address) bool {
	_, ok := slices.BinarySearchFunc(s.addrs, a, compareAddress)
	return ok
}

// Addresses returns an iterator over the selection in order.
func (s Selection) Addresses() iter.Seq[Address] {
	return slices.Values(s.addrs)
}

// Points returns the sorted indices of the selected points of curve.
func (s Selection) Points(curve int) []int {
	var out []int
	for _, a := range s.addrs {
		if a.Curve == curve && !a.IsCurve() {
			out = append(out, a.Point)
		}
	}
	return out
}

// HasPoints reports whether any individual point is selected.
func (s Selection) HasPoints() bool {
	return slices.ContainsFunc(s.addrs, func(a Address) bool { return !a.IsCurve() })
}

// Curves returns the sorted indices of all curves that have any entry in the
// selection, whole or per point.
func (s Selection) Curves() []int {
	var out []int
	for _, a := range s.addrs {
		if len(out) == 0 || out[len(out)-1] != a.Curve {
			out = append(out, a.Curve)
		}
	}
	return out
}

// WholeCurves returns the sorted indices of curves selected as a whole.
func (s Selection) WholeCurves() []int {
	var out []int
	for _, a := range s.addrs {
		if a.IsCurve() {
			out = append(out, a.Curve)
		}
	}
	return out
}

// Equal reports whether s and o contain the same addresses.
func (s Selection) Equal(o Selection) bool {
	return slices.Equal(s.addrs, o.addrs)
}

func (s Selection) String() string {
	parts := make([]string, len(s.addrs))
	for i, a := range s.addrs {
		parts[i] = a.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
