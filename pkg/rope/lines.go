package rope

import "unicode/utf8"

// LenLines returns the number of lines in the rope. Lines are demarcated by
// newline characters; a trailing newline yields an extra, empty, final line.
// A CRLF pair counts as a single line terminator, not two.
func (r *Rope) LenLines() int {
	if r == nil || r.Length() == 0 {
		return 1
	}
	return r.root.Lines() + 1
}

// CharToLine returns the zero-based line index containing the given
// character position. It walks only the nodes on the path to charIdx, using each internal node's cached newline count rather than
// scanning the whole document.
func (r *Rope) CharToLine(charIdx int) (int, error) {
	if r == nil {
		if charIdx == 0 {
			return 0, nil
		}
		return 0, outOfBounds("CharToLine", charIdx, 0)
	}
	if charIdx < 0 || charIdx > r.Length() {
		return 0, outOfBounds("CharToLine", charIdx, r.Length())
	}
	return linesBefore(r.root, charIdx), nil
}

// linesBefore counts newline characters strictly before charIdx in n.
func linesBefore(n node, charIdx int) int {
	switch t := n.(type) {
	case *leafNode:
		prefix := t.Slice(0, charIdx)
		count := 0
		for i := 0; i < len(prefix); i++ {
			if prefix[i] == '\n' {
				count++
			}
		}
		return count
	case *internalNode:
		if charIdx <= t.leftChars {
			return linesBefore(t.left, charIdx)
		}
		return t.leftLines + linesBefore(t.right, charIdx-t.leftChars)
	}
	return 0
}

// LineToChar returns the character position where the given line starts.
func (r *Rope) LineToChar(lineIdx int) (int, error) {
	if r == nil || lineIdx < 0 {
		if lineIdx == 0 {
			return 0, nil
		}
		return 0, outOfBounds("LineToChar", lineIdx, 0)
	}
	if lineIdx == 0 {
		return 0, nil
	}
	total := r.LenLines()
	if lineIdx == total {
		return r.Length(), nil
	}
	if lineIdx > total {
		return 0, outOfBounds("LineToChar", lineIdx, total)
	}
	return charAfterNthNewline(r.root, lineIdx), nil
}

// charAfterNthNewline returns the character offset immediately following
// the nth (1-indexed) newline in n, using cached per-node newline counts to
// descend straight to the leaf that contains it.
func charAfterNthNewline(n node, nth int) int {
	switch t := n.(type) {
	case *leafNode:
		seen := 0
		for i := 0; i < len(t.text); i++ {
			if t.text[i] == '\n' {
				seen++
				if seen == nth {
					return utf8.RuneCountInString(t.text[:i+1])
				}
			}
		}
		return t.Length()
	case *internalNode:
		if nth <= t.leftLines {
			return charAfterNthNewline(t.left, nth)
		}
		return t.leftChars + charAfterNthNewline(t.right, nth-t.leftLines)
	}
	return 0
}

// Line returns the text of the given line, excluding its line terminator.
func (r *Rope) Line(lineIdx int) (string, error) {
	start, err := r.LineToChar(lineIdx)
	if err != nil {
		return "", err
	}
	n := r.LenLines()
	var end int
	if lineIdx+1 < n {
		next, err := r.LineToChar(lineIdx + 1)
		if err != nil {
			return "", err
		}
		end = next
		// strip the terminator
		for end > start {
			ch, _ := r.CharAt(end - 1)
			if ch == '\n' || ch == '\r' {
				end--
				continue
			}
			break
		}
	} else {
		end = r.Length()
	}
	return r.Slice(start, end)
}
