// Package ot implements the position-based Operational Transformation core:
// a pure function library with no shared state, re-entrant under any
// concurrency model, that makes concurrent edits to the same document
// converge to an identical result (the TP1 property).
package ot

import (
	"github.com/coreseekdev/warp/pkg/edit"
)

// Transform returns a' such that applying a' after b has already been
// applied achieves a's original intent. a and b must have been issued
// against the same document state.
//
// The eight cases below are checked in order; the first match wins. Case 2
// (simultaneous inserts at the same position) breaks the tie by lexical
// comparison of the inserted text — both peers computing the same
// comparison is what makes the result converge; see TestTP1Convergence in
// transform_test.go for the convergence check this enables.
func Transform(a, b edit.Edit) edit.Edit {
	ins := runeLen(b.Text)
	delta := b.Delta()

	switch {
	case a.End < b.Start:
		// a strictly precedes b.
		return a

	case a.Start == b.Start && a.IsInsert() && b.IsInsert():
		if a.Text <= b.Text {
			return a
		}
		return edit.Edit{Start: a.Start + ins, End: a.End + ins, Text: a.Text}

	case a.End == b.Start:
		// adjacent, no overlap.
		return a

	case a.Start >= b.End:
		// a strictly follows b.
		return edit.Edit{Start: clampNonNeg(a.Start + delta), End: clampNonNeg(a.End + delta), Text: a.Text}

	case a.Start < b.Start && a.End <= b.End:
		// left overhang, right absorbed into b's deletion.
		return edit.Edit{Start: a.Start, End: b.Start, Text: a.Text}

	case a.Start < b.Start && a.End > b.End:
		// a straddles b entirely.
		tail := a.End - b.End
		return edit.Edit{Start: a.Start, End: b.Start + ins + tail, Text: a.Text}

	case a.Start >= b.Start && a.End <= b.End:
		// a is wholly inside b; its range is swallowed but its text survives
		// at the insertion point.
		at := b.Start + ins
		return edit.Edit{Start: at, End: at, Text: a.Text}

	default:
		// a.Start >= b.Start && a.End > b.End: right overhang.
		tail := a.End - b.End
		at := b.Start + ins
		return edit.Edit{Start: at, End: at + tail, Text: a.Text}
	}
}

// TransformList transforms every edit in a against every edit in b, in the
// order b was originally applied, and returns the transformed list.
func TransformList(a, b []edit.Edit) []edit.Edit {
	out := make([]edit.Edit, len(a))
	copy(out, a)
	for i, e := range out {
		transformed := e
		for _, against := range b {
			transformed = Transform(transformed, against)
		}
		out[i] = transformed
	}
	return out
}

// TransformPos moves a single position through edit e.
func TransformPos(pos int, e edit.Edit) int {
	switch {
	case pos <= e.Start:
		return pos
	case pos >= e.End:
		return clampNonNeg(pos + e.Delta())
	default:
		return e.Start + runeLen(e.Text)
	}
}

func clampNonNeg(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
