// Package history implements the branching, arena-indexed undo/redo tree.
// Nodes are addressed by integer id into a flat slice rather than owned
// pointers, sidestepping cyclic parent/child ownership and making the tree
// trivially serializable if a host wants to persist it.
package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/coreseekdev/warp/pkg/edit"
	"github.com/coreseekdev/warp/pkg/selection"
)

// Clock returns the current time. It is a package variable so tests can
// substitute a deterministic clock when exercising coalescing thresholds.
var Clock = time.Now

// NodeID addresses a node in a Tree's arena. The root is always 0.
type NodeID int

// Node is a group of edits recorded together: edits[i] and replaced[i] are
// paired, so that applying edits[i] to the buffer state left by edits[:i]
// would replace exactly replaced[i].
type Node struct {
	Edits           []edit.Edit
	Replaced        []string
	SelectionBefore *selection.Group
	Timestamp       time.Time
	Parent          NodeID
	HasParent       bool
	Children        []NodeID

	// Stamp is a process-independent correlation id for hosts that want to
	// log history operations across nodes without relying on an arena index
	// that may be reused across independent trees. It plays no role in
	// undo/redo/record, which operate entirely on NodeID.
	Stamp uuid.UUID
}

// Inverse returns the edit list that undoes n, in reverse application
// order: each inverse edit undoes exactly what the matching forward edit
// did.
func (n *Node) Inverse() []edit.Edit {
	out := make([]edit.Edit, 0, len(n.Edits))
	for i := len(n.Edits) - 1; i >= 0; i-- {
		out = append(out, n.Edits[i].Inverse(n.Replaced[i]))
	}
	return out
}

// Tree is a directed tree of Nodes. The root (id 0) always exists and has
// empty edits. Current identifies the node representing the buffer's
// present state. Nodes are append-only: undo/redo move Current but never
// prune the tree, so alternative branches survive.
type Tree struct {
	nodes          []*Node
	current        NodeID
	mergeThreshold time.Duration
}

// New returns a Tree with the given coalescing window. Edits recorded less
// than mergeThreshold apart, with no intervening branch, are merged into a
// single node.
func New(mergeThreshold time.Duration) *Tree {
	root := &Node{Timestamp: Clock(), Stamp: uuid.New()}
	return &Tree{nodes: []*Node{root}, current: 0, mergeThreshold: mergeThreshold}
}

// Current returns the id of the node representing the present state.
func (t *Tree) Current() NodeID { return t.current }

// Node returns the node at id.
func (t *Tree) Node(id NodeID) *Node { return t.nodes[id] }

// Record appends edits/replaced to the current node if it qualifies for
// coalescing, or branches a new child otherwise, and returns the resulting
// node id.
//
// Coalescing requires all three: the current node already has edits (the
// root never coalesces), it has no children yet (branching after undo must
// not silently extend an old node), and the time since its last update is
// under the merge threshold. The node's original selectionBefore is kept
// across a coalesce — it still marks the state at the start of the burst.
func (t *Tree) Record(edits []edit.Edit, replaced []string, selectionBefore *selection.Group) NodeID {
	cur := t.nodes[t.current]
	now := Clock()
	if len(cur.Edits) > 0 && len(cur.Children) == 0 && now.Sub(cur.Timestamp) < t.mergeThreshold {
		cur.Edits = append(cur.Edits, edits...)
		cur.Replaced = append(cur.Replaced, replaced...)
		cur.Timestamp = now
		return t.current
	}

	id := NodeID(len(t.nodes))
	node := &Node{
		Edits:           append([]edit.Edit(nil), edits...),
		Replaced:        append([]string(nil), replaced...),
		SelectionBefore: selectionBefore,
		Timestamp:       now,
		Parent:          t.current,
		HasParent:       true,
		Stamp:           uuid.New(),
	}
	t.nodes = append(t.nodes, node)
	cur.Children = append(cur.Children, id)
	t.current = id
	return id
}

// Undo moves Current to its parent and returns the inverse of the node left
// behind, that node's selectionBefore, and the new current id. ok is false
// at the root, where there is nothing to undo.
func (t *Tree) Undo() (edits []edit.Edit, before *selection.Group, current NodeID, ok bool) {
	cur := t.nodes[t.current]
	if !cur.HasParent {
		return nil, nil, t.current, false
	}
	inverse := cur.Inverse()
	before = cur.SelectionBefore
	t.current = cur.Parent
	return inverse, before, t.current, true
}

// Redo moves Current to its primary child (children[0], the first branch
// recorded under it) and returns that child's edits, selectionBefore, and the
// new current id. ok is false at a leaf, where there is nothing to redo.
func (t *Tree) Redo() (edits []edit.Edit, before *selection.Group, current NodeID, ok bool) {
	cur := t.nodes[t.current]
	if len(cur.Children) == 0 {
		return nil, nil, t.current, false
	}
	id := cur.Children[0]
	child := t.nodes[id]
	t.current = id
	return append([]edit.Edit(nil), child.Edits...), child.SelectionBefore, t.current, true
}
