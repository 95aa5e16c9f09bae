package edit

import (
	"math"
	"slices"

	"honnef.co/go/spline"
	"honnef.co/go/spline/undo"
)

// ScreenMetrics describes the display a gesture happens on. Paddings and
// lengths are in pixels.
type ScreenMetrics struct {
	// Scale is the number of pixels per value unit on each axis, as returned
	// by [Mapper.ScreenScale]. Neither component may be zero.
	Scale spline.Vec2
	// DragPadding is how far the pointer must travel before a press turns
	// into a drag.
	DragPadding float64
	// HitPadding is the hit tolerance around points, handles and curves.
	HitPadding float64
	// TangentLength is the distance at which tangent handles are drawn.
	TangentLength float64
}

// DefaultScreenMetrics holds the paddings used by the curve viewer. Its
// Scale is unset; see [ScreenMetrics.WithScale].
var DefaultScreenMetrics = ScreenMetrics{
	DragPadding:   2,
	HitPadding:    5,
	TangentLength: 55,
}

// WithScale returns a copy of m with the given scale.
func (m ScreenMetrics) WithScale(scale spline.Vec2) ScreenMetrics {
	m.Scale = scale
	return m
}

type dragMode int

const (
	modeSelect dragMode = iota
	modeMovePoints
	modeSetTangent
)

func (m dragMode) String() string {
	switch m {
	case modeSelect:
		return "select"
	case modeMovePoints:
		return "move points"
	case modeSetTangent:
		return "set tangent"
	default:
		return "unknown"
	}
}

// gesture is the scratch state of a press-drag-release sequence.
type gesture struct {
	mode    dragMode
	metrics ScreenMetrics
	ht      hitTester
	start   spline.Point

	// dragging is set once the pointer moved further than the drag padding.
	dragging bool
	// committed is set once the gesture opened an undo sequence.
	committed bool

	// original holds the pre-drag splines of the curves being edited.
	original map[int]spline.HermiteSpline
	// current holds the splines most recently committed.
	current map[int]spline.HermiteSpline
	// tangent is the point whose tangent is being dragged.
	tangent Address
	// boxCurves restricts rubber band selection. nil means all curves.
	boxCurves []int
	// selection is the selection from before the gesture.
	selection Selection
}

// Presenter turns pointer and keyboard input into edits of the curves
// exposed by a [CurveProvider].
//
// A press starts a gesture with OnStartDrag; what the gesture does is decided
// right there and stays fixed until OnEndDrag:
//
//   - pressing a tangent handle of a selected point drags the tangent,
//   - pressing a selected point moves all selected points,
//   - pressing any other point selects it and moves it,
//   - pressing a curve selects the curve, and dragging then selects its
//     points with a rubber band,
//   - pressing empty space clears the selection, and dragging then selects
//     points of all curves with a rubber band.
//
// Edits are executed on an [undo.Executor]. Each drag gesture results in one
// merged entry; inserting and removing points result in one entry each.
//
// Presenter is not safe for concurrent use. All methods are expected to be
// called from the UI thread.
type Presenter struct {
	view     Viewer
	history  undo.Executor
	provider CurveProvider

	selection Selection
	g         *gesture
}

// NewPresenter returns a presenter that reports to view and executes edits on
// history. It has no curves until SetCurveProvider is called.
func NewPresenter(view Viewer, history undo.Executor) *Presenter {
	return &Presenter{view: view, history: history}
}

// SetCurveProvider sets the curves to edit and clears the selection.
func (p *Presenter) SetCurveProvider(cp CurveProvider) {
	p.provider = cp
	p.g = nil
	p.view.SetInput(cp)
	p.setSelection(Selection{})
}

// CurveProvider returns the curves being edited.
func (p *Presenter) CurveProvider() CurveProvider {
	return p.provider
}

// Selection returns the current selection.
func (p *Presenter) Selection() Selection {
	return p.selection
}

// SetSelection replaces the selection, for example from an outline view.
func (p *Presenter) SetSelection(sel Selection) {
	p.setSelection(sel)
}

func (p *Presenter) setSelection(sel Selection) {
	p.selection = sel
	p.view.SetSelection(sel)
	p.view.Refresh()
}

// OnStartDrag starts a gesture at pos, in value space.
func (p *Presenter) OnStartDrag(pos spline.Point, m ScreenMetrics) {
	if p.provider == nil {
		return
	}
	g := &gesture{
		metrics:   m,
		ht:        newHitTester(p.provider, m.Scale, m.HitPadding),
		start:     pos,
		selection: p.selection,
	}
	p.g = g
	defer func() {
		spline.Logger().Debug("edit: start drag", "mode", g.mode, "pos", pos, "selection", p.selection)
	}()

	// Tangent handles are shown for selected points and for all points of
	// selected curves.
	if addr, ok := g.ht.nearestTangentHandle(pos, p.tangentCandidates(), m.TangentLength); ok {
		g.mode = modeSetTangent
		g.tangent = addr
		g.snapshot(p.provider, []int{addr.Curve})
		return
	}

	if _, ok := g.ht.nearestPoint(pos, p.selection.Contains, nil); ok {
		g.mode = modeMovePoints
		g.snapshot(p.provider, p.pointCurves())
		return
	}

	single, hasSingle := p.singleCurve()
	prefer := func(a Address) bool { return hasSingle && a.Curve == single }
	notSelected := func(a Address) bool { return !p.selection.Contains(a) }
	if addr, ok := g.ht.nearestPoint(pos, notSelected, prefer); ok {
		p.setSelection(NewSelection(addr))
		g.mode = modeMovePoints
		g.snapshot(p.provider, []int{addr.Curve})
		return
	}

	g.mode = modeSelect
	if curve, ok := g.ht.nearestCurve(pos); ok {
		p.setSelection(NewSelection(CurveAddress(curve)))
		g.boxCurves = []int{curve}
		return
	}
	p.setSelection(Selection{})
}

// OnDrag continues the current gesture with the pointer at pos.
func (p *Presenter) OnDrag(pos spline.Point) {
	g := p.g
	if g == nil {
		return
	}
	if !g.dragging {
		moved := pos.Sub(g.start).MulComponents(g.metrics.Scale).Hypot()
		if moved <= g.metrics.DragPadding {
			return
		}
		g.dragging = true
	}

	switch g.mode {
	case modeMovePoints:
		p.movePoints(pos)
	case modeSetTangent:
		p.setTangent(pos)
	case modeSelect:
		p.boxSelect(pos)
	}
}

// OnEndDrag ends the current gesture. A gesture that changed curves is
// closed into a single undo entry.
func (p *Presenter) OnEndDrag() {
	g := p.g
	if g == nil {
		return
	}
	p.g = nil
	if !g.dragging {
		return
	}
	switch g.mode {
	case modeMovePoints, modeSetTangent:
		if g.committed {
			p.commit(g, g.current, undo.Close)
		}
	case modeSelect:
		p.view.SetSelectionBox(spline.Point{}, spline.Point{})
		p.view.Refresh()
	}
	spline.Logger().Debug("edit: end drag", "mode", g.mode)
}

// OnCancelDrag aborts the current gesture, restoring the curves and the
// selection from before it started. Edits already made are closed with the
// original values, so the history stays consistent.
func (p *Presenter) OnCancelDrag() {
	g := p.g
	if g == nil {
		return
	}
	p.g = nil
	switch g.mode {
	case modeMovePoints, modeSetTangent:
		if g.committed {
			p.commit(g, g.original, undo.Close)
		}
	case modeSelect:
		if g.dragging {
			p.view.SetSelectionBox(spline.Point{}, spline.Point{})
		}
	}
	p.setSelection(g.selection)
	spline.Logger().Debug("edit: cancel drag", "mode", g.mode)
}

// snapshot records the pre-drag splines of curves.
func (g *gesture) snapshot(cp CurveProvider, curves []int) {
	g.original = make(map[int]spline.HermiteSpline, len(curves))
	for _, c := range curves {
		g.original[c] = cp.Spline(c)
	}
}

func (p *Presenter) movePoints(pos spline.Point) {
	g := p.g
	delta := pos.Sub(g.start)
	next := make(map[int]spline.HermiteSpline, len(g.original))
	for curve, s := range g.original {
		points := p.selection.Points(curve)
		// Move the leading point first so that the others are clamped
		// against its new position rather than its old one.
		if delta.X > 0 {
			slices.Reverse(points)
		}
		orig := s
		for _, i := range points {
			if i >= orig.Count() {
				continue
			}
			pt := orig.Point(i).Position().Translate(delta)
			s = s.SetPosition(i, pt.X, pt.Y)
		}
		next[curve] = s
	}
	p.commit(g, next, p.nextMergeType(g))
}

func (p *Presenter) setTangent(pos spline.Point) {
	g := p.g
	orig := g.original[g.tangent.Curve]
	pt := orig.Point(g.tangent.Point)
	dir := pos.Sub(pt.Position())
	if dir.Hypot2() == 0 {
		return
	}
	t := spline.ClampTangent(dir)
	next := map[int]spline.HermiteSpline{
		g.tangent.Curve: orig.SetTangent(g.tangent.Point, t.X, t.Y),
	}
	p.commit(g, next, p.nextMergeType(g))
}

func (p *Presenter) boxSelect(pos spline.Point) {
	g := p.g
	box := spline.NewRectFromPoints(g.start, pos)
	p.view.SetSelectionBox(box.Min(), box.Max())
	inside := g.ht.pointsIn(box.Inflate(g.ht.ext.X, g.ht.ext.Y), g.boxCurves)
	if len(inside) == 0 && g.boxCurves != nil {
		for _, c := range g.boxCurves {
			inside = append(inside, CurveAddress(c))
		}
	}
	p.setSelection(NewSelection(inside...))
}

func (p *Presenter) nextMergeType(g *gesture) undo.MergeType {
	if g.committed {
		return undo.Intermediate
	}
	return undo.Open
}

// commit executes a mergeable edit replacing the gesture's curves with
// splines.
func (p *Presenter) commit(g *gesture, splines map[int]spline.HermiteSpline, typ undo.MergeType) {
	me := mergeableEdit{
		// The selection does not change while dragging, so undo keeps the
		// grabbed points selected.
		curveEdit: newCurveEdit(p.provider, p, g.original, splines, p.selection, p.selection),
		typ:       typ,
	}

	var op undo.Operation
	if g.mode == modeSetTangent {
		op = &SetTangentOperation{mergeableEdit: me, point: g.tangent}
	} else {
		op = &MovePointsOperation{mergeableEdit: me}
	}
	p.history.Execute(op)
	g.committed = true
	g.current = splines
	spline.Logger().Debug("edit: commit", "label", op.Label(), "type", typ)
}

// OnAddPoint inserts a point at pos.X into the single selected curve and
// selects it. If the curve already has a point at that x, that point is
// selected instead.
func (p *Presenter) OnAddPoint(pos spline.Point) {
	curve, ok := p.singleCurve()
	if !ok || p.provider == nil || !p.provider.IsEnabled(curve) {
		return
	}
	s := p.provider.Spline(curve)
	x := min(max(pos.X, 0), 1)

	for i, pt := range s.Points() {
		if math.Abs(pt.X()-x) < spline.MinPointDistance {
			p.setSelection(NewSelection(PointAddress(curve, i)))
			return
		}
	}

	seg, ok := s.SegmentAt(x)
	if !ok {
		return
	}
	next, ok := s.InsertPoint(x)
	if !ok {
		spline.Logger().Warn("edit: point not inserted", "curve", curve, "x", x)
		return
	}
	op := &InsertPointOperation{newCurveEdit(
		p.provider, p,
		map[int]spline.HermiteSpline{curve: s},
		map[int]spline.HermiteSpline{curve: next},
		p.selection,
		NewSelection(PointAddress(curve, seg+1)),
	)}
	p.history.Execute(op)
}

// OnRemove removes all selected points. End points cannot be removed and
// stay selected; a curve that has no selected points left stays selected as
// a whole. Points of disabled curves are left alone and stay selected.
func (p *Presenter) OnRemove() {
	if p.provider == nil {
		return
	}
	before := map[int]spline.HermiteSpline{}
	after := map[int]spline.HermiteSpline{}
	var sel []Address
	for _, c := range p.selection.WholeCurves() {
		sel = append(sel, CurveAddress(c))
	}

	for _, curve := range p.pointCurves() {
		points := p.selection.Points(curve)
		if !p.provider.IsEnabled(curve) {
			// Hidden curves are not edited; their points stay selected.
			for _, i := range points {
				sel = append(sel, PointAddress(curve, i))
			}
			continue
		}
		s := p.provider.Spline(curve)
		slices.Reverse(points)

		next := s
		var kept, removed []int
		for _, i := range points {
			if n, ok := next.RemovePoint(i); ok {
				next = n
				removed = append(removed, i)
			} else {
				kept = append(kept, i)
			}
		}
		if len(removed) > 0 {
			before[curve] = s
			after[curve] = next
		}
		for _, i := range kept {
			// Shift by the number of removed points in front of i.
			shift := 0
			for _, r := range removed {
				if r < i {
					shift++
				}
			}
			sel = append(sel, PointAddress(curve, i-shift))
		}
		if len(kept) == 0 {
			sel = append(sel, CurveAddress(curve))
		}
	}
	if len(after) == 0 {
		return
	}
	p.history.Execute(&RemovePointsOperation{newCurveEdit(
		p.provider, p, before, after, p.selection, NewSelection(sel...),
	)})
}

// OnSelectAll selects every point of every enabled curve.
func (p *Presenter) OnSelectAll() {
	if p.provider == nil {
		return
	}
	var all []Address
	for curve := range p.provider.CurveCount() {
		if !p.provider.IsEnabled(curve) {
			continue
		}
		for i := range p.provider.Spline(curve).Count() {
			all = append(all, PointAddress(curve, i))
		}
	}
	p.setSelection(NewSelection(all...))
}

// OnDeselectAll clears the selection.
func (p *Presenter) OnDeselectAll() {
	p.setSelection(Selection{})
}

// OnPickSelect selects what is under pos without starting a gesture, as
// done before opening a context menu. Picking something that is already
// part of the selection keeps the selection as it is, and so does picking
// nothing.
func (p *Presenter) OnPickSelect(pos spline.Point, m ScreenMetrics) {
	if p.provider == nil {
		return
	}
	ht := newHitTester(p.provider, m.Scale, m.HitPadding)
	if addr, ok := ht.nearestPoint(pos, nil, p.selection.Contains); ok {
		if !p.selection.Contains(addr) {
			p.setSelection(NewSelection(addr))
		}
		return
	}
	if curve, ok := ht.nearestCurve(pos); ok {
		if !slices.Contains(p.selection.Curves(), curve) {
			p.setSelection(NewSelection(CurveAddress(curve)))
		}
	}
}

// OnFrame asks the viewer to zoom to fit the curves.
func (p *Presenter) OnFrame() {
	p.view.Frame()
}

// singleCurve returns the curve the selection refers to, if it refers to
// exactly one.
func (p *Presenter) singleCurve() (int, bool) {
	curves := p.selection.Curves()
	if len(curves) != 1 {
		return 0, false
	}
	return curves[0], true
}

// pointCurves returns the curves that have individually selected points.
func (p *Presenter) pointCurves() []int {
	var out []int
	for a := range p.selection.Addresses() {
		if !a.IsCurve() && !slices.Contains(out, a.Curve) {
			out = append(out, a.Curve)
		}
	}
	return out
}

func (p *Presenter) tangentCandidates() []Address {
	var out []Address
	for a := range p.selection.Addresses() {
		if !a.IsCurve() {
			out = append(out, a)
			continue
		}
		if !p.provider.IsEnabled(a.Curve) {
			continue
		}
		for i := range p.provider.Spline(a.Curve).Count() {
			out = append(out, PointAddress(a.Curve, i))
		}
	}
	return out
}
