package warp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/coreseekdev/warp/pkg/edit"
	"github.com/coreseekdev/warp/pkg/selection"
)

func TestApplyEditsMovesCursorToEndOfChange(t *testing.T) {
	c := New("hello world", time.Hour)
	err := c.ApplyEdits([]edit.Edit{edit.Insert(5, ",")})
	require.NoError(t, err)
	require.Equal(t, "hello, world", c.Buffer.Text())
	require.True(t, c.Selection.PrimarySelection().IsCursor())
	require.Equal(t, 6, c.Selection.PrimarySelection().Anchor)
}

func TestUndoRestoresTextAndSelection(t *testing.T) {
	c := New("hello world", time.Hour)
	c.Selection.SetPrimary(selection.Cursor(3))

	err := c.ApplyEdits([]edit.Edit{edit.Delete(0, 6)})
	require.NoError(t, err)
	require.Equal(t, "world", c.Buffer.Text())

	ok, err := c.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hello world", c.Buffer.Text())
	require.Equal(t, 3, c.Selection.PrimarySelection().Anchor)
}

func TestRedoReappliesEdit(t *testing.T) {
	c := New("hello world", time.Hour)
	require.NoError(t, c.ApplyEdits([]edit.Edit{edit.Insert(0, "X")}))
	ok, err := c.Undo()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "hello world", c.Buffer.Text())

	ok, err = c.Redo()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Xhello world", c.Buffer.Text())
}

func TestUndoAtRootFails(t *testing.T) {
	c := New("hello", time.Hour)
	ok, err := c.Undo()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestApplyRemoteEditsCarriesSelection(t *testing.T) {
	c := New("hello world", time.Hour)
	c.Selection.SetPrimary(selection.Cursor(8))

	err := c.ApplyRemoteEdits([]edit.Edit{edit.Insert(0, "prefix-")})
	require.NoError(t, err)
	require.Equal(t, "prefix-hello world", c.Buffer.Text())
	require.Equal(t, 8+len("prefix-"), c.Selection.PrimarySelection().Anchor)
}
