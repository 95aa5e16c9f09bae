// Package edit implements interactive editing of a set of animation curves.
//
// The host owns the curves and exposes them through a [CurveProvider]; it
// draws them through a [Viewer]. A [Presenter] sits in between: it receives
// pointer and keyboard input in value space, decides what is hit, maintains
// the [Selection], and turns gestures into undoable operations on an
// [undo.Executor].
//
// A [Mapper] converts between value space and the pixels of the plot. It is
// used by the host to translate pointer positions before calling the
// presenter, and to derive the [ScreenMetrics] that make hit tolerances
// independent of zoom.
package edit
