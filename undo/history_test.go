package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setValue sets *target to after and restores before on undo.
type setValue struct {
	target        *int
	before, after int
	typ           MergeType
}

func set(target *int, v int, typ MergeType) *setValue {
	return &setValue{target: target, before: *target, after: v, typ: typ}
}

func (op *setValue) Label() string        { return "Set Value" }
func (op *setValue) Execute()             { *op.target = op.after }
func (op *setValue) Undo()                { *op.target = op.before }
func (op *setValue) Redo()                { *op.target = op.after }
func (op *setValue) MergeType() MergeType { return op.typ }

func (op *setValue) CanMerge(o Operation) bool {
	other, ok := o.(*setValue)
	return ok && other.target == op.target
}

func (op *setValue) Merge(o Operation) {
	other := o.(*setValue)
	op.after = other.after
	op.typ = other.typ
}

type eventCounter map[EventKind]int

func count(h *History) eventCounter {
	c := eventCounter{}
	h.Subscribe(func(ev Event) { c[ev.Kind]++ })
	return c
}

func TestHistoryUndoRedo(t *testing.T) {
	var h History
	events := count(&h)
	v := 0

	h.Execute(set(&v, 1, Standalone))
	h.Execute(set(&v, 2, Standalone))
	require.Equal(t, 2, h.Len())
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, events[Done])

	require.True(t, h.Undo())
	assert.Equal(t, 1, v)
	require.True(t, h.Undo())
	assert.Equal(t, 0, v)
	assert.False(t, h.Undo())
	assert.False(t, h.CanUndo())

	require.True(t, h.Redo())
	assert.Equal(t, 1, v)
	assert.True(t, h.CanRedo())
	assert.Equal(t, 2, events[Undone])
	assert.Equal(t, 1, events[Redone])

	// A new entry discards what was undone.
	h.Execute(set(&v, 5, Standalone))
	assert.Equal(t, 2, h.Len())
	assert.False(t, h.CanRedo())
}

func TestHistoryMergeCollapsesGesture(t *testing.T) {
	var h History
	events := count(&h)
	v := 10

	h.Execute(set(&v, 11, Open))
	for i := 12; i < 20; i++ {
		h.Execute(set(&v, i, Intermediate))
	}
	h.Execute(set(&v, 20, Close))

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 20, v)
	assert.Equal(t, 1, events[Done])
	assert.Equal(t, 9, events[Changed])
	assert.Equal(t, Close, h.Top().(Mergeable).MergeType())

	require.True(t, h.Undo())
	assert.Equal(t, 10, v)
	require.True(t, h.Redo())
	assert.Equal(t, 20, v)
}

func TestHistoryNoMergeAfterClose(t *testing.T) {
	var h History
	v := 0

	h.Execute(set(&v, 1, Open))
	h.Execute(set(&v, 2, Close))
	h.Execute(set(&v, 3, Intermediate))
	assert.Equal(t, 2, h.Len())
}

func TestHistoryNoMergeAcrossTargets(t *testing.T) {
	var h History
	a, b := 0, 0

	h.Execute(set(&a, 1, Open))
	h.Execute(set(&b, 1, Intermediate))
	assert.Equal(t, 2, h.Len())

	h.Execute(set(&a, 2, Standalone))
	assert.Equal(t, 3, h.Len())
}

func TestHistoryNoMergeIntoUndoneEntry(t *testing.T) {
	var h History
	v := 0

	h.Execute(set(&v, 1, Standalone))
	h.Execute(set(&v, 2, Open))
	h.Undo()
	h.Execute(set(&v, 3, Intermediate))
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 3, v)
}

func TestHistoryLimit(t *testing.T) {
	h := History{Limit: 2}
	v := 0
	for i := 1; i <= 5; i++ {
		h.Execute(set(&v, i, Standalone))
	}
	assert.Equal(t, 2, h.Len())
	h.Undo()
	h.Undo()
	assert.Equal(t, 3, v)
	assert.False(t, h.CanUndo())
}

func TestCanMerge(t *testing.T) {
	v := 0
	tests := []struct {
		entry, op MergeType
		want      bool
	}{
		{Open, Intermediate, true},
		{Open, Close, true},
		{Intermediate, Intermediate, true},
		{Intermediate, Close, true},
		{Open, Open, false},
		{Open, Standalone, false},
		{Close, Intermediate, false},
		{Standalone, Intermediate, false},
	}
	for _, tt := range tests {
		got := CanMerge(set(&v, 1, tt.entry), set(&v, 2, tt.op))
		assert.Equal(t, tt.want, got, "%s <- %s", tt.entry, tt.op)
	}
}
