// Package warp composes the rope buffer, selection group, and history tree
// into the single facade a host embeds: Context. It owns nothing these
// packages don't already implement — it only sequences the three of them
// the way a host always needs to (apply edits, move the cursor, and record
// history in one step; or undo/redo and restore the selection that went
// with it).
package warp

import (
	"time"

	"github.com/coreseekdev/warp/pkg/edit"
	"github.com/coreseekdev/warp/pkg/history"
	"github.com/coreseekdev/warp/pkg/rope"
	"github.com/coreseekdev/warp/pkg/selection"
)

// Context is the editing session: one buffer, one selection group, one
// history tree. It is not safe for concurrent mutation.
type Context struct {
	Buffer    *rope.Buffer
	Selection *selection.Group
	History   *history.Tree
}

// New returns a Context over the given initial text, with a single cursor
// at position 0 and an empty history tree using mergeThreshold as its
// coalescing window.
func New(text string, mergeThreshold time.Duration) *Context {
	return &Context{
		Buffer:    rope.NewBuffer(text),
		Selection: selection.NewGroup(),
		History:   history.New(mergeThreshold),
	}
}

// ApplyEdits applies edits to the buffer in order, records them as a single
// history node, and moves the primary selection to the end of the last
// edit's change via the move-cursor-to-end-of-change policy. An empty batch
// is a no-op and is not recorded.
func (c *Context) ApplyEdits(edits []edit.Edit) error {
	if len(edits) == 0 {
		return nil
	}
	before := c.Selection.Clone()
	replaced := make([]string, len(edits))
	for i, e := range edits {
		r, err := c.Buffer.Apply(e.Start, e.End, e.Text)
		if err != nil {
			return err
		}
		replaced[i] = r
	}
	c.History.Record(edits, replaced, before)
	if last := edits[len(edits)-1]; !last.IsNoop() {
		c.Selection.SetPrimary(selection.CursorAfterEdit(last))
	}
	return nil
}

// ApplyRemoteEdits applies edits to the buffer without recording history,
// carrying the current selection through each edit via the
// preserve-relative-position policy. Use this for edits the session didn't
// cause itself: remote collaborators, or edits replayed from elsewhere.
func (c *Context) ApplyRemoteEdits(edits []edit.Edit) error {
	for _, e := range edits {
		if _, err := c.Buffer.Apply(e.Start, e.End, e.Text); err != nil {
			return err
		}
		c.Selection = c.Selection.Transform(e)
	}
	return nil
}

// Undo reverts the most recently recorded history node, if any, and
// restores the selection that preceded it. ok is false at the root, where
// there is nothing to undo.
func (c *Context) Undo() (ok bool, err error) {
	edits, before, _, ok := c.History.Undo()
	if !ok {
		return false, nil
	}
	for _, e := range edits {
		if _, err := c.Buffer.Apply(e.Start, e.End, e.Text); err != nil {
			return false, err
		}
	}
	if before != nil {
		c.Selection = before.Clone()
	}
	return true, nil
}

// Redo reapplies the current node's primary child (its first recorded
// branch), if any, and moves the primary selection to the end of the last
// redone edit's change, as ApplyEdits did when those edits were first
// applied. ok is false at a leaf, where there is nothing to redo.
func (c *Context) Redo() (ok bool, err error) {
	edits, _, _, ok := c.History.Redo()
	if !ok {
		return false, nil
	}
	for _, e := range edits {
		if _, err := c.Buffer.Apply(e.Start, e.End, e.Text); err != nil {
			return false, err
		}
	}
	if last := edits[len(edits)-1]; !last.IsNoop() {
		c.Selection.SetPrimary(selection.CursorAfterEdit(last))
	}
	return true, nil
}
