package spline

import (
	"fmt"
)

// Size is the extent of a drawing area, typically the plot of a curve
// viewer, in screen units.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// IsEmpty reports whether the size has no area.
func (sz Size) IsEmpty() bool {
	return sz.Width <= 0 || sz.Height <= 0
}
