package rope

import (
	"github.com/clipperhouse/uax29/graphemes"
)

// NextGrapheme returns the character position of the next grapheme cluster
// boundary strictly after pos. Returns len_chars when pos is len_chars; a pos
// outside [0, len_chars] is an error.
//
// The algorithm mirrors a streaming grapheme cursor: it locates the chunk
// containing pos and segments it, extending the window with successive
// chunks whenever the boundary search runs off the end of what it has seen
// so far — the rope is never materialized in full to answer this query.
func (r *Rope) NextGrapheme(pos int) (int, error) {
	if r == nil || pos < 0 || pos > r.Length() {
		return 0, outOfBounds("NextGrapheme", pos, r.Length())
	}
	if pos >= r.Length() {
		return r.Length(), nil
	}
	byteIdx := r.CharToByte(pos)
	chunk, err := r.ChunkAt(byteIdx)
	if err != nil {
		return 0, err
	}
	windowStart := chunk.StartByte
	window := chunk.Text
	localOff := byteIdx - windowStart

	for {
		bound, ok := firstBoundaryAfter(window, localOff)
		if ok && (bound < len(window) || windowStart+len(window) >= r.Size()) {
			return r.ByteToChar(windowStart + bound), nil
		}
		nextStart := windowStart + len(window)
		if nextStart >= r.Size() {
			return r.Length(), nil
		}
		next, err := r.ChunkAt(nextStart)
		if err != nil {
			return 0, err
		}
		if next.Text == "" {
			return r.Length(), nil
		}
		window += next.Text
	}
}

// PrevGrapheme returns the character position of the previous grapheme
// cluster boundary strictly before pos. Returns 0 when pos is 0; a pos
// outside [0, len_chars] is an error.
func (r *Rope) PrevGrapheme(pos int) (int, error) {
	if r == nil || pos < 0 || pos > r.Length() {
		return 0, outOfBounds("PrevGrapheme", pos, r.Length())
	}
	if pos <= 0 {
		return 0, nil
	}
	byteIdx := r.CharToByte(pos)
	chunk, err := r.ChunkAt(byteIdx)
	if err != nil {
		return 0, err
	}
	windowStart := chunk.StartByte
	window := chunk.Text
	localOff := byteIdx - windowStart

	for {
		bound, ok := lastBoundaryBefore(window, localOff)
		if ok && (bound > 0 || windowStart == 0) {
			return r.ByteToChar(windowStart + bound), nil
		}
		if windowStart == 0 {
			return 0, nil
		}
		prevChunk, err := r.ChunkAt(windowStart - 1)
		if err != nil {
			return 0, err
		}
		localOff += windowStart - prevChunk.StartByte
		window = prevChunk.Text + window
		windowStart = prevChunk.StartByte
	}
}

// IsGraphemeBoundary reports whether pos sits on a grapheme cluster boundary.
// Position 0 and len_chars are always boundaries.
func (r *Rope) IsGraphemeBoundary(pos int) (bool, error) {
	if r == nil || pos < 0 || pos > r.Length() {
		return false, outOfBounds("IsGraphemeBoundary", pos, r.Length())
	}
	if pos == 0 || pos == r.Length() {
		return true, nil
	}
	byteIdx := r.CharToByte(pos)
	chunk, err := r.ChunkAt(byteIdx)
	if err != nil {
		return false, err
	}
	window := chunk.Text
	windowStart := chunk.StartByte
	if windowStart > 0 {
		prev, err := r.ChunkAt(windowStart - 1)
		if err == nil {
			window = prev.Text + window
			windowStart = prev.StartByte
		}
	}
	local := byteIdx - windowStart
	for _, b := range boundaries(window) {
		if b == local {
			return true, nil
		}
		if b > local {
			break
		}
	}
	return false, nil
}

// boundaries returns every grapheme cluster boundary (byte offsets,
// including 0 and len(s)) in s.
func boundaries(s string) []int {
	bounds := []int{0}
	seg := graphemes.NewStringSegmenter(s)
	pos := 0
	for seg.Next() {
		pos += len(seg.Bytes())
		bounds = append(bounds, pos)
	}
	return bounds
}

// firstBoundaryAfter returns the first boundary strictly after byte offset
// from, or ok=false if the window ends before one is found.
func firstBoundaryAfter(s string, from int) (int, bool) {
	for _, b := range boundaries(s) {
		if b > from {
			return b, true
		}
	}
	return 0, false
}

// lastBoundaryBefore returns the last boundary strictly before byte offset
// upto, or ok=false if the window starts after one is found.
func lastBoundaryBefore(s string, upto int) (int, bool) {
	bounds := boundaries(s)
	best := -1
	found := false
	for _, b := range bounds {
		if b < upto {
			best = b
			found = true
			continue
		}
		break
	}
	return best, found
}
