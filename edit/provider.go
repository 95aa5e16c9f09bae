package edit

import (
	"honnef.co/go/spline"
)

// CurveProvider gives the presenter access to the curves being edited. It is
// implemented by the host, which typically stores each curve in an animated
// property.
//
// Operations compare providers to decide whether two edits target the same
// curves, so implementations must be comparable; pointer types are.
type CurveProvider interface {
	// CurveCount returns the number of curves, enabled or not.
	CurveCount() int
	// Spline returns the current value of curve.
	Spline(curve int) spline.HermiteSpline
	// SetSpline replaces the value of curve. intermediate is true while an
	// edit is still in progress, such as during a drag gesture, and false
	// once the value is final.
	SetSpline(s spline.HermiteSpline, curve int, intermediate bool)
	// IsEnabled reports whether curve takes part in editing. Disabled curves
	// are not drawn, hit, selected or framed.
	IsEnabled(curve int) bool
}

// Viewer draws curves and the editing state. The presenter pushes state into
// it and asks it to redraw.
type Viewer interface {
	SetInput(curves CurveProvider)
	SetSelection(sel Selection)
	// SetSelectionBox sets the rubber band rectangle in value space. An
	// empty rectangle hides it.
	SetSelectionBox(min, max spline.Point)
	Refresh()
	// Frame asks the viewer to zoom to fit the enabled curves.
	Frame()
}
