package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/spline"
	"honnef.co/go/spline/undo"
)

type recordingSelector struct {
	sel Selection
}

func (r *recordingSelector) setSelection(sel Selection) { r.sel = sel }

func moveOp(c *curves, sel selectionSetter, curve int, before, after spline.HermiteSpline, typ undo.MergeType) *MovePointsOperation {
	return &MovePointsOperation{mergeableEdit{
		curveEdit: newCurveEdit(c, sel,
			map[int]spline.HermiteSpline{curve: before},
			map[int]spline.HermiteSpline{curve: after},
			Selection{}, NewSelection(PointAddress(curve, 1)),
		),
		typ: typ,
	}}
}

func TestMovePointsMerge(t *testing.T) {
	c := testCurves()
	sel := &recordingSelector{}
	var h undo.History

	s := c.splines[0]
	s, ok := s.InsertPoint(0.3)
	require.True(t, ok)
	c.splines[0] = s
	orig := s

	// Drag the inserted point from (0.3, 0.3) to (0.4, 0.5) in small steps.
	prev := orig
	const steps = 10
	for i := 1; i <= steps; i++ {
		d := spline.Vec(0.1, 0.2).Mul(float64(i) / steps)
		next := orig.SetPosition(1, 0.3+d.X, 0.3+d.Y)
		typ := undo.Intermediate
		switch i {
		case 1:
			typ = undo.Open
		case steps:
			typ = undo.Close
		}
		h.Execute(moveOp(c, sel, 0, prev, next, typ))
		prev = next
	}

	require.Equal(t, 1, h.Len())
	p := c.splines[0].Point(1)
	assert.InDelta(t, 0.4, p.X(), 1e-9)
	assert.InDelta(t, 0.5, p.Y(), 1e-9)
	assert.True(t, sel.sel.Equal(NewSelection(PointAddress(0, 1))))
	assert.Equal(t, steps-1, c.intermediate)

	op := h.Top().(*MovePointsOperation)
	assert.Equal(t, undo.Close, op.MergeType())
	got, ok := op.Spline(0)
	require.True(t, ok)
	assert.Equal(t, c.splines[0], got)
	assert.Equal(t, []int{0}, op.Curves())

	// One undo restores the spline from before the drag.
	require.True(t, h.Undo())
	assert.Equal(t, orig, c.splines[0])
	assert.True(t, sel.sel.IsEmpty())

	require.True(t, h.Redo())
	assert.InDelta(t, 0.5, c.splines[0].Point(1).Y(), 1e-9)
}

func TestOperationsCanMerge(t *testing.T) {
	c := testCurves()
	other := testCurves()
	s := c.splines[0]

	open := moveOp(c, nil, 0, s, s, undo.Open)
	assert.True(t, open.CanMerge(moveOp(c, nil, 0, s, s, undo.Intermediate)))
	assert.False(t, open.CanMerge(moveOp(c, nil, 1, s, s, undo.Intermediate)), "different curve")
	assert.False(t, open.CanMerge(moveOp(other, nil, 0, s, s, undo.Intermediate)), "different provider")

	tangent := func(point Address, typ undo.MergeType) *SetTangentOperation {
		return &SetTangentOperation{
			mergeableEdit: mergeableEdit{
				curveEdit: newCurveEdit(c, nil,
					map[int]spline.HermiteSpline{point.Curve: s},
					map[int]spline.HermiteSpline{point.Curve: s},
					Selection{}, Selection{},
				),
				typ: typ,
			},
			point: point,
		}
	}
	first := tangent(PointAddress(0, 0), undo.Open)
	assert.True(t, first.CanMerge(tangent(PointAddress(0, 0), undo.Intermediate)))
	assert.False(t, first.CanMerge(tangent(PointAddress(0, 1), undo.Intermediate)), "different point")
	assert.False(t, first.CanMerge(open), "different kind")
	assert.False(t, open.CanMerge(first), "different kind")
}

func TestInsertAndRemoveOperations(t *testing.T) {
	c := testCurves()
	sel := &recordingSelector{}
	var h undo.History

	before := c.splines[0]
	after, ok := before.InsertPoint(0.5)
	require.True(t, ok)
	h.Execute(&InsertPointOperation{newCurveEdit(c, sel,
		map[int]spline.HermiteSpline{0: before},
		map[int]spline.HermiteSpline{0: after},
		NewSelection(CurveAddress(0)), NewSelection(PointAddress(0, 1)),
	)})
	assert.Equal(t, "Insert Point", h.Top().Label())
	assert.Equal(t, 3, c.splines[0].Count())
	assert.Zero(t, c.intermediate)

	removed, ok := c.splines[0].RemovePoint(1)
	require.True(t, ok)
	h.Execute(&RemovePointsOperation{newCurveEdit(c, sel,
		map[int]spline.HermiteSpline{0: c.splines[0]},
		map[int]spline.HermiteSpline{0: removed},
		NewSelection(PointAddress(0, 1)), NewSelection(CurveAddress(0)),
	)})
	assert.Equal(t, "Remove Points", h.Top().Label())
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, before, c.splines[0])

	h.Undo()
	assert.Equal(t, after, c.splines[0])
	assert.True(t, sel.sel.Equal(NewSelection(PointAddress(0, 1))))
	h.Undo()
	assert.Equal(t, before, c.splines[0])
	assert.True(t, sel.sel.Equal(NewSelection(CurveAddress(0))))
}
