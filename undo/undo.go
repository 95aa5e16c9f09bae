// Package undo provides an explicit undo history for editing operations.
//
// Operations are values implementing [Operation]. The history runs them,
// records them, and walks back and forth through them on [History.Undo] and
// [History.Redo]. Operations that implement [Mergeable] can collapse a
// sequence of related edits, such as every intermediate state of a drag
// gesture, into a single history entry.
package undo

import (
	"fmt"
)

// MergeType describes an operation's role in a sequence of merged edits.
type MergeType int

const (
	// Standalone operations are never merged.
	Standalone MergeType = iota
	// Open starts a sequence that later operations may merge into.
	Open
	// Intermediate continues an open sequence.
	Intermediate
	// Close ends a sequence. Nothing merges into a closed entry.
	Close
)

func (t MergeType) String() string {
	switch t {
	case Standalone:
		return "standalone"
	case Open:
		return "open"
	case Intermediate:
		return "intermediate"
	case Close:
		return "close"
	default:
		return fmt.Sprintf("MergeType(%d)", int(t))
	}
}

// accepting reports whether an entry of type t still accepts merges.
func (t MergeType) accepting() bool {
	return t == Open || t == Intermediate
}

// continuing reports whether an operation of type t may merge into an
// accepting entry.
func (t MergeType) continuing() bool {
	return t == Intermediate || t == Close
}

// Operation is a reversible edit.
type Operation interface {
	// Label is a short, human readable description, such as "Move Points".
	Label() string
	// Execute applies the operation for the first time.
	Execute()
	// Undo reverts the operation.
	Undo()
	// Redo applies the operation again after it has been undone.
	Redo()
}

// Mergeable is an operation that can absorb later operations on the same
// target.
//
// Merging o into m must leave m so that Redo applies o's final state and Undo
// restores the state from before m was first executed. After the merge, m's
// MergeType must be o's.
type Mergeable interface {
	Operation
	MergeType() MergeType
	// CanMerge reports whether o targets the same thing as the receiver and
	// is of a compatible kind.
	CanMerge(o Operation) bool
	// Merge absorbs o. It is only called after CanMerge returned true and
	// after o has been executed.
	Merge(o Operation)
}

// Executor runs operations. [History] is the canonical implementation; hosts
// with their own undo system can provide another.
type Executor interface {
	Execute(op Operation)
}

// CanMerge reports whether op can be merged into entry: entry must still be
// open, op must continue a sequence, and entry must accept op's target.
func CanMerge(entry, op Operation) bool {
	m, ok := entry.(Mergeable)
	if !ok || !m.MergeType().accepting() {
		return false
	}
	o, ok := op.(Mergeable)
	if !ok || !o.MergeType().continuing() {
		return false
	}
	return m.CanMerge(op)
}
