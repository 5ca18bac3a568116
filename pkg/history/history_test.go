package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coreseekdev/warp/pkg/edit"
	"github.com/coreseekdev/warp/pkg/selection"
)

func withClock(t *testing.T, now time.Time) func() {
	t.Helper()
	prev := Clock
	Clock = func() time.Time { return now }
	return func() { Clock = prev }
}

func TestRecordBranchesFromRoot(t *testing.T) {
	tr := New(time.Second)
	before := selection.Single(selection.Cursor(0))
	id := tr.Record([]edit.Edit{edit.Insert(0, "hi")}, []string{""}, before)
	require.NotEqual(t, NodeID(0), id)
	require.Equal(t, id, tr.Current())
}

func TestRecordCoalescesWithinThreshold(t *testing.T) {
	t0 := time.Unix(0, 0)
	restore := withClock(t, t0)
	defer restore()

	tr := New(500 * time.Millisecond)
	before := selection.Single(selection.Cursor(0))
	id1 := tr.Record([]edit.Edit{edit.Insert(0, "h")}, []string{""}, before)

	Clock = func() time.Time { return t0.Add(100 * time.Millisecond) }
	id2 := tr.Record([]edit.Edit{edit.Insert(1, "i")}, []string{""}, before)

	require.Equal(t, id1, id2, "edits within the merge window should coalesce")
	require.Len(t, tr.Node(id2).Edits, 2)
}

func TestRecordBranchesAfterThreshold(t *testing.T) {
	t0 := time.Unix(0, 0)
	restore := withClock(t, t0)
	defer restore()

	tr := New(100 * time.Millisecond)
	before := selection.Single(selection.Cursor(0))
	id1 := tr.Record([]edit.Edit{edit.Insert(0, "h")}, []string{""}, before)

	Clock = func() time.Time { return t0.Add(time.Second) }
	id2 := tr.Record([]edit.Edit{edit.Insert(1, "i")}, []string{""}, before)

	require.NotEqual(t, id1, id2)
	require.Equal(t, id1, tr.Node(id2).Parent)
}

func TestRecordBranchesAfterUndo(t *testing.T) {
	t0 := time.Unix(0, 0)
	restore := withClock(t, t0)
	defer restore()

	tr := New(time.Hour)
	before := selection.Single(selection.Cursor(0))
	id1 := tr.Record([]edit.Edit{edit.Insert(0, "h")}, []string{""}, before)
	tr.Undo()
	// current is root again; recording now must branch, not coalesce into id1,
	// since id1 is no longer current.
	id2 := tr.Record([]edit.Edit{edit.Insert(0, "x")}, []string{""}, before)
	require.NotEqual(t, id1, id2)
	require.Equal(t, NodeID(0), tr.Node(id2).Parent)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	tr := New(0)
	before := selection.Single(selection.Cursor(0))
	tr.Record([]edit.Edit{edit.Insert(0, "hi")}, []string{""}, before)

	edits, sel, _, ok := tr.Undo()
	require.True(t, ok)
	require.Equal(t, before, sel)
	require.Len(t, edits, 1)
	require.Equal(t, "", edits[0].Text)

	_, _, _, ok = tr.Undo()
	require.False(t, ok, "undoing past the root should fail")

	edits, _, _, ok = tr.Redo()
	require.True(t, ok)
	require.Equal(t, "hi", edits[0].Text)
}

func TestRedoFailsAtLeaf(t *testing.T) {
	tr := New(0)
	_, _, _, ok := tr.Redo()
	require.False(t, ok)
}

func TestNodeInverseReversesOrder(t *testing.T) {
	n := &Node{
		Edits:    []edit.Edit{edit.Insert(0, "a"), edit.Insert(1, "b")},
		Replaced: []string{"", ""},
	}
	inv := n.Inverse()
	require.Len(t, inv, 2)
	require.True(t, inv[0].IsDelete())
	require.Equal(t, 1, inv[0].Start)
	require.Equal(t, 2, inv[0].End)
}
