// Package selection implements the anchor/head cursor model and its
// multi-cursor container, SelectionGroup, along with the two edit-aware
// repositioning policies the core needs: moving a selection to the end of an
// edit it caused, and letting the ot package carry a selection through an
// edit it merely witnessed.
package selection

import (
	"github.com/coreseekdev/warp/pkg/edit"
	"github.com/coreseekdev/warp/pkg/ot"
)

// Selection is an anchor/head pair. Anchor is the side that stays put when
// extending a selection; head is the side that moves. anchor == head is a
// cursor. Direction is forward iff Anchor <= Head.
type Selection struct {
	Anchor int
	Head   int
}

// New returns a Selection with the given anchor and head.
func New(anchor, head int) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// Cursor returns a zero-width Selection at pos.
func Cursor(pos int) Selection {
	return Selection{Anchor: pos, Head: pos}
}

// IsCursor reports whether the selection has zero width.
func (s Selection) IsCursor() bool { return s.Anchor == s.Head }

// IsForward reports whether Anchor <= Head.
func (s Selection) IsForward() bool { return s.Anchor <= s.Head }

// Range returns the ordered (min, max) bounds of the selection.
func (s Selection) Range() (min, max int) {
	if s.Anchor <= s.Head {
		return s.Anchor, s.Head
	}
	return s.Head, s.Anchor
}

// Normalize clamps both sides of s into [0, lenChars].
func (s Selection) Normalize(lenChars int) Selection {
	return Selection{Anchor: clamp(s.Anchor, lenChars), Head: clamp(s.Head, lenChars)}
}

func clamp(pos, lenChars int) int {
	if pos < 0 {
		return 0
	}
	if pos > lenChars {
		return lenChars
	}
	return pos
}

// JSON is the wire representation of a Selection: an anchor/head pair,
// stable across languages, per the core's external-interface contract.
type JSON struct {
	Anchor int `json:"anchor"`
	Head   int `json:"head"`
}

// ToJSON converts s to its wire representation.
func (s Selection) ToJSON() JSON {
	return JSON{Anchor: s.Anchor, Head: s.Head}
}

// FromJSON converts a wire representation back into a Selection.
func FromJSON(j JSON) Selection {
	return Selection{Anchor: j.Anchor, Head: j.Head}
}

// Transform carries the selection through e using the "preserve relative
// position" policy: both sides move by ot.TransformPos independently. Use
// this for remote or bystander edits the selection didn't cause.
func (s Selection) Transform(e edit.Edit) Selection {
	return Selection{Anchor: ot.TransformPos(s.Anchor, e), Head: ot.TransformPos(s.Head, e)}
}

// CursorAfterEdit returns the cursor that the "move cursor to end of change"
// policy places after e: the end of the inserted/replaced text, or the
// edit's start for a pure delete. A no-op edit has no end of change: the
// policy leaves the selection untouched, and CursorAfterEdit returns the
// zero Selection for it.
func CursorAfterEdit(e edit.Edit) Selection {
	switch {
	case e.IsNoop():
		return Selection{}
	case e.IsDelete():
		return Cursor(e.Start)
	default:
		return Cursor(e.Start + runeLen(e.Text))
	}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Group is an ordered, non-empty collection of selections with one marked
// primary. Selections may overlap; merging overlaps is left to the caller.
type Group struct {
	Sels    []Selection
	Primary int
}

// NewGroup returns a Group over sels with primary index 0. An empty sels
// slice yields a single cursor at position 0.
func NewGroup(sels ...Selection) *Group {
	if len(sels) == 0 {
		sels = []Selection{Cursor(0)}
	}
	return &Group{Sels: sels, Primary: 0}
}

// Single returns a Group containing exactly one selection.
func Single(s Selection) *Group {
	return &Group{Sels: []Selection{s}, Primary: 0}
}

// PrimarySelection returns the group's primary selection.
func (g *Group) PrimarySelection() Selection {
	return g.Sels[g.Primary]
}

// SetPrimary replaces the primary selection with s.
func (g *Group) SetPrimary(s Selection) {
	g.Sels[g.Primary] = s
}

// Clone returns an independent copy of g.
func (g *Group) Clone() *Group {
	sels := make([]Selection, len(g.Sels))
	copy(sels, g.Sels)
	return &Group{Sels: sels, Primary: g.Primary}
}

// Transform returns a new Group with every selection carried through e via
// the "preserve relative position" policy, primary index unchanged. A no-op
// edit returns an equal group.
func (g *Group) Transform(e edit.Edit) *Group {
	if e.IsNoop() {
		return g.Clone()
	}
	sels := make([]Selection, len(g.Sels))
	for i, s := range g.Sels {
		sels[i] = s.Transform(e)
	}
	return &Group{Sels: sels, Primary: g.Primary}
}

// GroupJSON is the wire representation of a Group: a selection list and a
// primary index, stable across languages, per the core's external-interface
// contract.
type GroupJSON struct {
	Sels    []JSON `json:"sels"`
	Primary int    `json:"primary"`
}

// ToJSON converts g to its wire representation.
func (g *Group) ToJSON() GroupJSON {
	sels := make([]JSON, len(g.Sels))
	for i, s := range g.Sels {
		sels[i] = s.ToJSON()
	}
	return GroupJSON{Sels: sels, Primary: g.Primary}
}

// GroupFromJSON converts a wire representation back into a Group.
func GroupFromJSON(j GroupJSON) *Group {
	sels := make([]Selection, len(j.Sels))
	for i, s := range j.Sels {
		sels[i] = FromJSON(s)
	}
	return &Group{Sels: sels, Primary: j.Primary}
}
