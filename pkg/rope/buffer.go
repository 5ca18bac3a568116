package rope

// Buffer is a mutable text container backed by an immutable Rope. It is the
// host-facing editing surface: every mutation replaces the underlying Rope
// wholesale and reports the text it displaced, so callers (history, in
// particular) can record exact inverses.
//
// Buffer is not safe for concurrent mutation; callers serialize access.
type Buffer struct {
	text *Rope
}

// NewBuffer creates a Buffer over the given initial content.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: New(text)}
}

// Text returns the buffer's full content.
func (b *Buffer) Text() string {
	if b == nil {
		return ""
	}
	return b.text.String()
}

// LenChars returns the number of characters in the buffer.
func (b *Buffer) LenChars() int {
	if b == nil {
		return 0
	}
	return b.text.Length()
}

// LenLines returns the number of lines in the buffer.
func (b *Buffer) LenLines() int {
	if b == nil {
		return 1
	}
	return b.text.LenLines()
}

// CharAt returns the rune at pos.
func (b *Buffer) CharAt(pos int) (rune, error) {
	return b.text.CharAt(pos)
}

// CharToLine returns the line index containing pos.
func (b *Buffer) CharToLine(pos int) (int, error) {
	return b.text.CharToLine(pos)
}

// LineToChar returns the character index where lineIdx starts.
func (b *Buffer) LineToChar(lineIdx int) (int, error) {
	return b.text.LineToChar(lineIdx)
}

// SliceToString returns the text in [start, end).
func (b *Buffer) SliceToString(start, end int) (string, error) {
	return b.text.Slice(start, end)
}

// LineChars returns the character range [start, end) spanned by lineIdx,
// excluding its terminator.
func (b *Buffer) LineChars(lineIdx int) (start, end int, err error) {
	start, err = b.text.LineToChar(lineIdx)
	if err != nil {
		return 0, 0, err
	}
	line, err := b.text.Line(lineIdx)
	if err != nil {
		return 0, 0, err
	}
	return start, start + runeLen(line), nil
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// PrevGraphemeBoundary returns the previous grapheme boundary before pos.
func (b *Buffer) PrevGraphemeBoundary(pos int) (int, error) {
	return b.text.PrevGrapheme(pos)
}

// NextGraphemeBoundary returns the next grapheme boundary strictly after pos.
func (b *Buffer) NextGraphemeBoundary(pos int) (int, error) {
	return b.text.NextGrapheme(pos)
}

// IsGraphemeBoundary reports whether pos is a grapheme cluster boundary.
func (b *Buffer) IsGraphemeBoundary(pos int) (bool, error) {
	return b.text.IsGraphemeBoundary(pos)
}

// Apply replaces [start, end) with text, mutating the buffer in place, and
// returns the text that was displaced. Applying a no-op edit (start == end
// and text == "") leaves the buffer untouched and returns "".
func (b *Buffer) Apply(start, end int, text string) (string, error) {
	if start == end && text == "" {
		return "", nil
	}
	if start < 0 || end > b.text.Length() || start > end {
		return "", outOfRange("Apply", start, end, b.text.Length())
	}
	replaced, err := b.text.Slice(start, end)
	if err != nil {
		return "", err
	}
	next, err := b.text.Replace(start, end, text)
	if err != nil {
		return "", err
	}
	b.text = next
	return replaced, nil
}
