// Package rope implements an immutable, character-indexed text buffer for
// editor-scale documents.
//
// A Rope is a binary tree representation of a string whose internal nodes
// cache the extent of their left subtree, so an edit rebuilds only the nodes
// on the paths to the leaves it touches instead of copying the whole text.
// Every position accepted or returned by this package is a character (Unicode
// code point) index, never a byte index — byte offsets only ever appear as an
// internal detail of chunk access, used by the grapheme cursor to walk
// Unicode cluster boundaries without materializing the whole document.
//
// # Performance
//
//	Operation       | Time
//	----------------|-----------
//	Length/Size     | O(1), cached
//	String          | O(n)
//
// Slice, Insert and Delete follow root-to-leaf paths and scan or copy the
// leaves they touch, so their cost grows with the depth of the tree. The
// tree is not rebalanced after edits: an insertion inside a leaf splits it
// and adds a level, so the depth is not bounded by O(log n).
//
// # Thread safety
//
// Rope is immutable: every mutating operation returns a new Rope, leaving
// the receiver untouched. Reads are safe for concurrent use; Buffer, which
// wraps a Rope with a mutable "current revision" pointer, is not.
//
// Based on "Ropes: an Alternative to Strings" (Boehm, Atkinson, Plass, 1995),
// in the spirit of the ropey crate used by the Helix editor.
package rope

import (
	"strings"
	"unicode/utf8"
)

// Rope is an immutable, character-indexed string represented as a binary
// tree of text chunks.
type Rope struct {
	root   node
	length int // characters
	size   int // bytes
}

// node is the interface shared by leaf and internal tree nodes.
type node interface {
	Length() int // characters
	Size() int   // bytes
	Lines() int  // count of '\n' bytes
	Slice(start, end int) string
	IsLeaf() bool
}

// leafNode stores actual text content.
type leafNode struct {
	text string
}

// internalNode caches the character/byte/newline extent of its left subtree
// so that position lookups never need to touch leaves outside the search
// path.
type internalNode struct {
	left, right node
	leftChars   int
	leftBytes   int
	leftLines   int
}

func (n *leafNode) Length() int  { return utf8.RuneCountInString(n.text) }
func (n *leafNode) Size() int    { return len(n.text) }
func (n *leafNode) Lines() int   { return strings.Count(n.text, "\n") }
func (n *leafNode) IsLeaf() bool { return true }

func (n *leafNode) Slice(start, end int) string {
	byteStart := charToByteOffset(n.text, start)
	byteEnd := byteStart + charToByteOffset(n.text[byteStart:], end-start)
	return n.text[byteStart:byteEnd]
}

func (n *internalNode) Length() int  { return n.leftChars + n.right.Length() }
func (n *internalNode) Size() int    { return n.leftBytes + n.right.Size() }
func (n *internalNode) Lines() int   { return n.leftLines + n.right.Lines() }
func (n *internalNode) IsLeaf() bool { return false }

func (n *internalNode) Slice(start, end int) string {
	if end <= n.leftChars {
		return n.left.Slice(start, end)
	}
	if start >= n.leftChars {
		return n.right.Slice(start-n.leftChars, end-n.leftChars)
	}
	return n.left.Slice(start, n.leftChars) + n.right.Slice(0, end-n.leftChars)
}

func charToByteOffset(s string, chars int) int {
	b := 0
	for i := 0; i < chars; i++ {
		_, w := utf8.DecodeRuneInString(s[b:])
		b += w
	}
	return b
}

// New creates a Rope from the given string. Empty text yields Empty().
func New(text string) *Rope {
	if text == "" {
		return Empty()
	}
	return &Rope{
		root:   &leafNode{text: text},
		length: utf8.RuneCountInString(text),
		size:   len(text),
	}
}

// Empty returns a Rope with no content.
func Empty() *Rope {
	return &Rope{root: &leafNode{text: ""}}
}

// Length returns the number of characters (Unicode code points) in the rope.
func (r *Rope) Length() int {
	if r == nil {
		return 0
	}
	return r.length
}

// Size returns the number of bytes in the rope.
func (r *Rope) Size() int {
	if r == nil {
		return 0
	}
	return r.size
}

// String returns the rope's full content.
func (r *Rope) String() string {
	if r == nil || r.length == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(r.size)
	collectText(r.root, &b)
	return b.String()
}

func collectText(n node, b *strings.Builder) {
	switch t := n.(type) {
	case *leafNode:
		b.WriteString(t.text)
	case *internalNode:
		collectText(t.left, b)
		collectText(t.right, b)
	}
}

// Slice returns the text in the half-open character range [start, end).
func (r *Rope) Slice(start, end int) (string, error) {
	if start < 0 || end > r.Length() || start > end {
		return "", outOfRange("Slice", start, end, r.Length())
	}
	if start == end {
		return "", nil
	}
	return r.root.Slice(start, end), nil
}

// CharAt returns the rune at the given character position.
func (r *Rope) CharAt(pos int) (rune, error) {
	if r == nil || pos < 0 || pos >= r.length {
		return 0, outOfBounds("CharAt", pos, r.Length())
	}
	s := r.root.Slice(pos, pos+1)
	ch, _ := utf8.DecodeRuneInString(s)
	return ch, nil
}

// Insert returns a new Rope with text inserted at the given character
// position. Inserting the empty string is a no-op that returns r unchanged.
func (r *Rope) Insert(pos int, text string) (*Rope, error) {
	if r == nil {
		r = Empty()
	}
	if pos < 0 || pos > r.length {
		return nil, outOfBounds("Insert", pos, r.length)
	}
	if text == "" {
		return r, nil
	}
	return &Rope{
		root:   insertInto(r.root, pos, text),
		length: r.length + utf8.RuneCountInString(text),
		size:   r.size + len(text),
	}, nil
}

// Delete returns a new Rope with the half-open character range [start, end)
// removed. start == end is a no-op that returns r unchanged.
func (r *Rope) Delete(start, end int) (*Rope, error) {
	if r == nil {
		r = Empty()
	}
	if start < 0 || end > r.length || start > end {
		return nil, outOfRange("Delete", start, end, r.length)
	}
	if start == end {
		return r, nil
	}
	removed := r.root.Slice(start, end)
	return &Rope{
		root:   deleteFrom(r.root, start, end),
		length: r.length - utf8.RuneCountInString(removed),
		size:   r.size - len(removed),
	}, nil
}

// Replace returns a new Rope with [start, end) replaced by text.
func (r *Rope) Replace(start, end int, text string) (*Rope, error) {
	deleted, err := r.Delete(start, end)
	if err != nil {
		return nil, err
	}
	return deleted.Insert(start, text)
}

func concat(left, right node) node {
	if left == nil || left.Length() == 0 {
		return right
	}
	if right == nil || right.Length() == 0 {
		return left
	}
	return &internalNode{left: left, right: right, leftChars: left.Length(), leftBytes: left.Size(), leftLines: left.Lines()}
}

// insertInto splits the leaf containing pos into a left leaf (with text
// appended at the insertion point) and a right leaf holding the remainder,
// joined by an internal node — the same leaf-splitting strategy a rope
// needs to keep single edits from touching the whole document as it grows.
func insertInto(n node, pos int, text string) node {
	if n.Length() == 0 {
		return &leafNode{text: text}
	}
	if leaf, ok := n.(*leafNode); ok {
		at := charToByteOffset(leaf.text, pos)
		left := &leafNode{text: leaf.text[:at] + text}
		right := &leafNode{text: leaf.text[at:]}
		return concat(left, right)
	}
	in := n.(*internalNode)
	if pos <= in.leftChars {
		newLeft := insertInto(in.left, pos, text)
		return &internalNode{left: newLeft, right: in.right, leftChars: newLeft.Length(), leftBytes: newLeft.Size(), leftLines: newLeft.Lines()}
	}
	newRight := insertInto(in.right, pos-in.leftChars, text)
	return &internalNode{left: in.left, right: newRight, leftChars: in.leftChars, leftBytes: in.leftBytes, leftLines: in.leftLines}
}

func deleteFrom(n node, start, end int) node {
	if n.Length() == 0 || start >= end {
		return n
	}
	if leaf, ok := n.(*leafNode); ok {
		s := charToByteOffset(leaf.text, start)
		e := s + charToByteOffset(leaf.text[s:], end-start)
		return &leafNode{text: leaf.text[:s] + leaf.text[e:]}
	}
	in := n.(*internalNode)
	if end <= in.leftChars {
		newLeft := deleteFrom(in.left, start, end)
		return concat(newLeft, in.right)
	}
	if start >= in.leftChars {
		newRight := deleteFrom(in.right, start-in.leftChars, end-in.leftChars)
		return concat(in.left, newRight)
	}
	newLeft := deleteFrom(in.left, start, in.leftChars)
	newRight := deleteFrom(in.right, 0, end-in.leftChars)
	return concat(newLeft, newRight)
}
