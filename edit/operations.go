package edit

import (
	"maps"
	"slices"

	"honnef.co/go/spline"
	"honnef.co/go/spline/undo"
)

// selectionSetter is implemented by the presenter. Operations restore the
// selection that belongs to the state they apply.
type selectionSetter interface {
	setSelection(sel Selection)
}

// curveEdit replaces the splines of one or more curves.
type curveEdit struct {
	provider  CurveProvider
	selector  selectionSetter
	curves    []int
	before    map[int]spline.HermiteSpline
	after     map[int]spline.HermiteSpline
	selBefore Selection
	selAfter  Selection
}

func newCurveEdit(
	p CurveProvider,
	sel selectionSetter,
	before, after map[int]spline.HermiteSpline,
	selBefore, selAfter Selection,
) curveEdit {
	return curveEdit{
		provider:  p,
		selector:  sel,
		curves:    slices.Sorted(maps.Keys(after)),
		before:    before,
		after:     after,
		selBefore: selBefore,
		selAfter:  selAfter,
	}
}

func (e *curveEdit) apply(splines map[int]spline.HermiteSpline, sel Selection, intermediate bool) {
	for _, c := range e.curves {
		e.provider.SetSpline(splines[c], c, intermediate)
	}
	if e.selector != nil {
		e.selector.setSelection(sel)
	}
}

func (e *curveEdit) Execute() { e.apply(e.after, e.selAfter, false) }
func (e *curveEdit) Redo()    { e.apply(e.after, e.selAfter, false) }
func (e *curveEdit) Undo()    { e.apply(e.before, e.selBefore, false) }

// Spline returns the value the operation assigns to curve.
func (e *curveEdit) Spline(curve int) (spline.HermiteSpline, bool) {
	s, ok := e.after[curve]
	return s, ok
}

// Curves returns the sorted indices of the curves the operation changes.
func (e *curveEdit) Curves() []int {
	return slices.Clone(e.curves)
}

// InsertPointOperation adds a control point to a curve and selects it.
type InsertPointOperation struct {
	curveEdit
}

func (*InsertPointOperation) Label() string { return "Insert Point" }

// RemovePointsOperation removes control points from one or more curves.
type RemovePointsOperation struct {
	curveEdit
}

func (*RemovePointsOperation) Label() string { return "Remove Points" }

// mergeableEdit is a curve edit that takes part in an open/close sequence,
// so that a whole drag gesture becomes a single history entry.
type mergeableEdit struct {
	curveEdit
	typ undo.MergeType
}

func (e *mergeableEdit) MergeType() undo.MergeType { return e.typ }

// Execute commits the new splines as intermediate values until the
// sequence is closed.
func (e *mergeableEdit) Execute() {
	e.apply(e.after, e.selAfter, e.typ == undo.Open || e.typ == undo.Intermediate)
}

func (e *mergeableEdit) sameTarget(o *mergeableEdit) bool {
	return e.provider == o.provider && slices.Equal(e.curves, o.curves)
}

// absorb takes over o's resulting state, keeping e's original state for
// undo.
func (e *mergeableEdit) absorb(o *mergeableEdit) {
	e.after = o.after
	e.selAfter = o.selAfter
	e.typ = o.typ
}

// MovePointsOperation moves the selected control points of one or more
// curves.
type MovePointsOperation struct {
	mergeableEdit
}

var _ undo.Mergeable = (*MovePointsOperation)(nil)

func (*MovePointsOperation) Label() string { return "Move Points" }

func (op *MovePointsOperation) CanMerge(o undo.Operation) bool {
	other, ok := o.(*MovePointsOperation)
	return ok && op.sameTarget(&other.mergeableEdit)
}

func (op *MovePointsOperation) Merge(o undo.Operation) {
	op.absorb(&o.(*MovePointsOperation).mergeableEdit)
}

// SetTangentOperation changes the tangent of a single control point.
type SetTangentOperation struct {
	mergeableEdit
	point Address
}

var _ undo.Mergeable = (*SetTangentOperation)(nil)

func (*SetTangentOperation) Label() string { return "Set Tangent" }

func (op *SetTangentOperation) CanMerge(o undo.Operation) bool {
	other, ok := o.(*SetTangentOperation)
	return ok && op.point == other.point && op.sameTarget(&other.mergeableEdit)
}

func (op *SetTangentOperation) Merge(o undo.Operation) {
	op.absorb(&o.(*SetTangentOperation).mergeableEdit)
}
