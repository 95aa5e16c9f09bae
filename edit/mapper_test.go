package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"honnef.co/go/spline"
)

func TestMapperRoundTrip(t *testing.T) {
	m := NewMapper(40, spline.Sz(500, 200))
	m.OffsetY = 30
	for _, p := range []spline.Point{
		spline.Pt(0, 0),
		spline.Pt(1, 1),
		spline.Pt(0.25, -3),
		spline.Pt(0.7, 12.5),
	} {
		got := m.FromScreen(m.ToScreen(p))
		assert.InDelta(t, p.X, got.X, 1e-12)
		assert.InDelta(t, p.Y, got.Y, 1e-12)

		// Transform agrees with the per-axis conversions.
		s := p.Transform(m.Transform())
		assert.InDelta(t, m.ToScreenX(p.X), s.X, 1e-9)
		assert.InDelta(t, m.ToScreenY(p.Y), s.Y, 1e-9)
	}

	assert.Equal(t, 40.0, m.ToScreenX(0))
	assert.Equal(t, 540.0, m.ToScreenX(1))
	// Screen y grows downwards.
	assert.Greater(t, m.ToScreenY(0), m.ToScreenY(1))
}

func TestMapperDeltas(t *testing.T) {
	m := NewMapper(0, spline.Sz(500, 200))
	assert.Equal(t, spline.Vec(500, -100), m.ScreenScale())
	assert.Equal(t, spline.Vec(50, -20), m.ToScreenDelta(spline.Vec(0.1, 0.2)))
	assert.Equal(t, spline.Vec(0.1, 0.2), m.FromScreenDelta(spline.Vec(50, -20)))

	r := m.ToScreenRect(spline.Rect{X0: 0, Y0: 0, X1: 1, Y1: 1})
	assert.Equal(t, 500.0, r.Width())
	assert.Equal(t, 100.0, r.Height())

	metrics := m.Metrics()
	assert.Equal(t, m.ScreenScale(), metrics.Scale)
	assert.Equal(t, DefaultScreenMetrics.HitPadding, metrics.HitPadding)
}

func TestMapperTrack(t *testing.T) {
	m := NewMapper(0, spline.Sz(500, 200))
	before := m.ToScreenY(0.5)
	m.Track(25)
	assert.Equal(t, before+25, m.ToScreenY(0.5))
}

func TestMapperDolly(t *testing.T) {
	m := NewMapper(0, spline.Sz(500, 200))
	m.OffsetY = 50
	center := m.FromScreenY(100)

	m.Dolly(0.5)
	assert.InDelta(t, 150, m.ZoomY, 1e-12)
	assert.InDelta(t, center, m.FromScreenY(100), 1e-12)

	m.Dolly(-0.5)
	assert.InDelta(t, 75, m.ZoomY, 1e-12)
	assert.InDelta(t, center, m.FromScreenY(100), 1e-12)

	for range 100 {
		m.Dolly(-0.99)
	}
	assert.Equal(t, MinZoomY, m.ZoomY)
}

func TestMapperFit(t *testing.T) {
	m := NewMapper(0, spline.Sz(500, 200))
	m.Fit(-1, 3, 1)
	assert.InDelta(t, 200, m.ToScreenY(-1), 1e-9)
	assert.InDelta(t, 0, m.ToScreenY(3), 1e-9)

	m.Fit(0, 1, 1.1)
	assert.InDelta(t, 200, m.ToScreenY(-0.05), 1e-9)
	assert.InDelta(t, 0, m.ToScreenY(1.05), 1e-9)

	// A flat range is padded so the view does not collapse.
	m.Fit(2, 2, 1.1)
	assert.InDelta(t, 200, m.ToScreenY(-3), 1e-9)
	assert.InDelta(t, 0, m.ToScreenY(7), 1e-9)
}

func TestMapperFitSplines(t *testing.T) {
	c := &curves{
		splines:  []spline.HermiteSpline{spline.DefaultHermiteSpline(), flatSpline(5)},
		disabled: map[int]bool{},
	}
	m := NewMapper(0, spline.Sz(500, 200))
	assert.True(t, m.FitSplines(c, 1))
	assert.InDelta(t, 200, m.ToScreenY(0), 1e-9)
	assert.InDelta(t, 0, m.ToScreenY(5), 1e-9)

	c.disabled[1] = true
	assert.True(t, m.FitSplines(c, 1))
	assert.InDelta(t, 0, m.ToScreenY(1), 1e-9)

	c.disabled[0] = true
	before := m
	assert.False(t, m.FitSplines(c, 1))
	assert.Equal(t, before, m)
}

func TestMapperVisible(t *testing.T) {
	m := NewMapper(40, spline.Sz(500, 200))
	m.OffsetY = 50
	v := m.Visible()
	assert.InDelta(t, 0, v.X0, 1e-12)
	assert.InDelta(t, 1, v.X1, 1e-12)
	assert.InDelta(t, m.FromScreenY(200), v.Y0, 1e-12)
	assert.InDelta(t, m.FromScreenY(0), v.Y1, 1e-12)

	// The scalar conversions agree with the inverse transform.
	p := m.FromScreen(spline.Pt(165, 70))
	assert.InDelta(t, m.FromScreenX(165), p.X, 1e-12)
	assert.InDelta(t, m.FromScreenY(70), p.Y, 1e-12)
}

func TestMapperFitSplinesEmptyPlot(t *testing.T) {
	c := &curves{splines: []spline.HermiteSpline{spline.DefaultHermiteSpline()}}
	m := NewMapper(0, spline.Sz(500, 0))
	before := m
	assert.False(t, m.FitSplines(c, 1))
	assert.Equal(t, before, m)
}
