package ot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coreseekdev/warp/pkg/edit"
)

func TestTransformPrecedes(t *testing.T) {
	a := edit.Insert(2, "x")
	b := edit.Insert(10, "y")
	require.Equal(t, a, Transform(a, b))
}

func TestTransformSimultaneousInsertTieBreak(t *testing.T) {
	a := edit.Insert(5, "banana")
	b := edit.Insert(5, "apple")
	ta := Transform(a, b)
	tb := Transform(b, a)
	// "apple" < "banana" lexically: apple stays put, banana shifts right.
	require.Equal(t, 5, tb.Start)
	require.Equal(t, 5+len("apple"), ta.Start)
}

func TestTransformFollowsShiftsByDelta(t *testing.T) {
	a := edit.Insert(10, "x")
	b := edit.Insert(0, "hello")
	ta := Transform(a, b)
	require.Equal(t, 15, ta.Start)
}

func TestTransformOverlappingDeletes(t *testing.T) {
	a := edit.Delete(0, 5)
	b := edit.Delete(3, 8)
	ta := Transform(a, b)
	tb := Transform(b, a)
	require.False(t, ta.IsNoop() && tb.IsNoop())
}

func TestTransformInsideSwallowed(t *testing.T) {
	a := edit.Insert(5, "mid")
	b := edit.Delete(0, 10)
	ta := Transform(a, b)
	require.Equal(t, 0, ta.Start)
	require.Equal(t, "mid", ta.Text)
}

// TestTP1Convergence checks the core correctness property: applying a then
// transform(b,a), or b then transform(a,b), reaches the same document.
func TestTP1Convergence(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		a, b edit.Edit
	}{
		{"disjoint inserts", "hello world", edit.Insert(0, "A"), edit.Insert(6, "B")},
		{"disjoint deletes", "hello world", edit.Delete(0, 2), edit.Delete(8, 11)},
		{"overlapping deletes", "hello world", edit.Delete(0, 6), edit.Delete(3, 9)},
		{"insert inside delete", "hello world", edit.Insert(3, "X"), edit.Delete(0, 11)},
		{"same-position inserts", "hello world", edit.Insert(5, "A"), edit.Insert(5, "B")},
		{"replace vs insert", "hello world", edit.New(2, 5, "XY"), edit.Insert(4, "Z")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			left := apply(t, apply(t, c.doc, c.a), Transform(c.b, c.a))
			right := apply(t, apply(t, c.doc, c.b), Transform(c.a, c.b))
			require.Equal(t, left, right)
		})
	}
}

func apply(t *testing.T, doc string, e edit.Edit) string {
	t.Helper()
	r := []rune(doc)
	require.GreaterOrEqual(t, e.Start, 0)
	require.LessOrEqual(t, e.End, len(r))
	return string(r[:e.Start]) + e.Text + string(r[e.End:])
}

func TestTransformPos(t *testing.T) {
	e := edit.Insert(3, "xyz")
	require.Equal(t, 0, TransformPos(0, e))
	require.Equal(t, 3, TransformPos(3, e))
	require.Equal(t, 9, TransformPos(6, e))
}

func TestTransformList(t *testing.T) {
	a := []edit.Edit{edit.Insert(0, "A"), edit.Insert(10, "B")}
	b := []edit.Edit{edit.Insert(5, "C")}
	out := TransformList(a, b)
	require.Len(t, out, 2)
	require.Equal(t, 0, out[0].Start)
	require.Equal(t, 11, out[1].Start)
}
