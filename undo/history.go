package undo

import (
	"honnef.co/go/spline"
)

// EventKind identifies what happened to a history.
type EventKind int

const (
	// Done is sent when an operation was executed and added as a new entry.
	Done EventKind = iota
	// Changed is sent when an operation was executed and merged into the
	// newest entry.
	Changed
	// Undone is sent after an entry was undone.
	Undone
	// Redone is sent after an entry was redone.
	Redone
)

func (k EventKind) String() string {
	switch k {
	case Done:
		return "done"
	case Changed:
		return "changed"
	case Undone:
		return "undone"
	case Redone:
		return "redone"
	default:
		return "unknown"
	}
}

// Event describes a change to a [History]. Op is the entry affected; for
// Changed it is the entry that absorbed the new operation.
type Event struct {
	Kind EventKind
	Op   Operation
}

// History is a linear undo history. Executing an operation after undoing
// discards the undone entries.
//
// The zero value is an empty, unlimited history. History is not safe for
// concurrent use; edits are expected to arrive from a single UI thread.
type History struct {
	// Limit is the maximum number of entries kept. Older entries are
	// dropped first. Zero means no limit.
	Limit int

	ops       []Operation
	pos       int // number of entries that are currently applied
	listeners []func(Event)
}

var _ Executor = (*History)(nil)

// Subscribe registers fn to be called after every change to the history.
func (h *History) Subscribe(fn func(Event)) {
	h.listeners = append(h.listeners, fn)
}

func (h *History) notify(kind EventKind, op Operation) {
	for _, fn := range h.listeners {
		fn(Event{Kind: kind, Op: op})
	}
}

// Execute runs op. If the newest entry is open and accepts op (see
// [CanMerge]), op is merged into it; otherwise op becomes a new entry.
func (h *History) Execute(op Operation) {
	if top := h.Top(); top != nil && h.pos == len(h.ops) && CanMerge(top, op) {
		op.Execute()
		top.(Mergeable).Merge(op)
		spline.Logger().Debug("undo: merged operation", "label", op.Label(), "type", op.(Mergeable).MergeType())
		h.notify(Changed, top)
		return
	}

	op.Execute()
	h.ops = append(h.ops[:h.pos], op)
	if h.Limit > 0 && len(h.ops) > h.Limit {
		h.ops = h.ops[len(h.ops)-h.Limit:]
	}
	h.pos = len(h.ops)
	spline.Logger().Debug("undo: new entry", "label", op.Label(), "entries", len(h.ops))
	h.notify(Done, op)
}

// Top returns the entry that the next call to Undo would revert, or nil.
func (h *History) Top() Operation {
	if h.pos == 0 {
		return nil
	}
	return h.ops[h.pos-1]
}

// Len returns the number of entries, including undone ones.
func (h *History) Len() int {
	return len(h.ops)
}

// CanUndo reports whether there is an entry to undo.
func (h *History) CanUndo() bool {
	return h.pos > 0
}

// CanRedo reports whether there is an undone entry to redo.
func (h *History) CanRedo() bool {
	return h.pos < len(h.ops)
}

// Undo reverts the newest applied entry. It reports false if there is
// nothing to undo.
func (h *History) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	h.pos--
	op := h.ops[h.pos]
	op.Undo()
	h.notify(Undone, op)
	return true
}

// Redo re-applies the oldest undone entry. It reports false if there is
// nothing to redo.
func (h *History) Redo() bool {
	if !h.CanRedo() {
		return false
	}
	op := h.ops[h.pos]
	h.pos++
	op.Redo()
	h.notify(Redone, op)
	return true
}

// Reset removes all entries.
func (h *History) Reset() {
	h.ops = nil
	h.pos = 0
}
