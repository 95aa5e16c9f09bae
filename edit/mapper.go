package edit

import (
	"math"

	"honnef.co/go/spline"
)

const (
	// DefaultZoomY is the vertical zoom of a new mapper, in pixels per unit.
	DefaultZoomY = 100
	// MinZoomY is the smallest vertical zoom Dolly allows.
	MinZoomY = 0.01

	// fitMinRange and fitPadding handle curves that are flat: a y range
	// smaller than fitMinRange is widened by fitPadding in both directions
	// before framing.
	fitMinRange = 0.001
	fitPadding  = 5
)

// Mapper converts between value space, where curves live, and screen space,
// where the pointer lives. Screen y grows downwards.
//
// The x axis always maps [0, 1] onto the plot width, starting at Left. The y
// axis can be panned and zoomed:
//
//	screenY = height − (y·ZoomY − OffsetY)
type Mapper struct {
	// Left is the screen x of value x = 0, usually the width of the y axis
	// gutter.
	Left float64
	// Size is the size of the plot area in pixels.
	Size spline.Size
	// OffsetY pans the view vertically, in pixels.
	OffsetY float64
	// ZoomY is the vertical scale in pixels per value unit.
	ZoomY float64
}

// NewMapper returns a mapper for a plot of the given size, starting left
// pixels from the edge, at the default zoom.
func NewMapper(left float64, size spline.Size) Mapper {
	return Mapper{Left: left, Size: size, ZoomY: DefaultZoomY}
}

// Transform returns the affine map from value space to screen space.
func (m Mapper) Transform() spline.Affine {
	return spline.Scale(m.Size.Width, -m.ZoomY).
		ThenTranslate(spline.Vec(m.Left, m.Size.Height+m.OffsetY))
}

// ScreenScale returns the number of pixels per value unit on each axis. The
// y component is negative because screen y grows downwards.
func (m Mapper) ScreenScale() spline.Vec2 {
	return spline.Vec(m.Size.Width, -m.ZoomY)
}

func (m Mapper) ToScreenX(x float64) float64 {
	return x*m.Size.Width + m.Left
}

func (m Mapper) ToScreenY(y float64) float64 {
	return m.Size.Height - (y*m.ZoomY - m.OffsetY)
}

func (m Mapper) FromScreenX(x float64) float64 {
	return (x - m.Left) / m.Size.Width
}

func (m Mapper) FromScreenY(y float64) float64 {
	return (m.Size.Height - y + m.OffsetY) / m.ZoomY
}

func (m Mapper) ToScreen(p spline.Point) spline.Point {
	return spline.Pt(m.ToScreenX(p.X), m.ToScreenY(p.Y))
}

// FromScreen converts a pointer position to value space. It is the inverse
// of [Mapper.Transform].
func (m Mapper) FromScreen(p spline.Point) spline.Point {
	return p.Transform(m.Transform().Invert())
}

// ToScreenDelta converts a displacement in value space to pixels.
func (m Mapper) ToScreenDelta(d spline.Vec2) spline.Vec2 {
	return m.Transform().TransformVec(d)
}

// FromScreenDelta converts a displacement in pixels to value space.
func (m Mapper) FromScreenDelta(d spline.Vec2) spline.Vec2 {
	return d.DivComponents(m.ScreenScale())
}

// ToScreenRect converts a value space rectangle to screen space. The result
// has non-negative width and height.
func (m Mapper) ToScreenRect(r spline.Rect) spline.Rect {
	return r.Transform(m.Transform())
}

// Visible returns the part of value space shown in the plot area.
func (m Mapper) Visible() spline.Rect {
	plot := spline.Rect{X0: m.Left, Y0: 0, X1: m.Left + m.Size.Width, Y1: m.Size.Height}
	return plot.Transform(m.Transform().Invert())
}

// Metrics returns the default screen metrics for this mapper's scale.
func (m Mapper) Metrics() ScreenMetrics {
	return DefaultScreenMetrics.WithScale(m.ScreenScale())
}

// Track pans the view by dy pixels.
func (m *Mapper) Track(dy float64) {
	m.OffsetY += dy
}

// Dolly zooms the y axis by the relative amount, keeping the value at the
// vertical center of the plot in place. Zoom never drops below MinZoomY.
func (m *Mapper) Dolly(amount float64) {
	center := m.Visible().Center().Y
	before := m.ToScreenY(center)

	m.ZoomY = max(m.ZoomY+amount*m.ZoomY, MinZoomY)
	m.OffsetY += before - m.ToScreenY(center)
}

// Fit zooms and pans so that [minY, maxY] fills the plot height. margin adds
// room around the range; 1.1 yields 10% extra.
func (m *Mapper) Fit(minY, maxY, margin float64) {
	dist := maxY - minY
	minY -= (dist*margin - dist) / 2
	maxY += (dist*margin - dist) / 2
	if math.Abs(maxY-minY) <= fitMinRange {
		minY -= fitPadding
		maxY += fitPadding
	}

	// Both ends of the range must land on the plot's edges:
	//
	//	0      = height − (maxY·zoom − offset)
	//	height = height − (minY·zoom − offset)
	//
	// The second equation gives offset = minY·zoom, which substituted into
	// the first yields zoom = height / (maxY − minY).
	m.ZoomY = m.Size.Height / (maxY - minY)
	m.OffsetY = minY * m.ZoomY
}

// FitSplines frames the enabled curves of p. It reports false, leaving the
// mapper unchanged, if no curve is enabled or the plot has no area.
func (m *Mapper) FitSplines(p CurveProvider, margin float64) bool {
	if m.Size.IsEmpty() {
		return false
	}
	var bounds spline.Rect
	found := false
	for i := range p.CurveCount() {
		if !p.IsEnabled(i) {
			continue
		}
		b := p.Spline(i).Bounds()
		if found {
			bounds = bounds.Union(b)
		} else {
			bounds, found = b, true
		}
	}
	if !found {
		return false
	}
	m.Fit(bounds.Y0, bounds.Y1, margin)
	return true
}
