// Package textobj implements polymorphic text-object matchers — Word,
// BigWord, Paragraph, Delimiter, Quote, and (in regex.go) the regex-backed
// variants — over a small read-only capability set any text source can
// expose. Matchers hold no state between calls and never mutate the source.
package textobj

// Mode selects how much of the match a matcher returns: Inside excludes the
// delimiting characters or surrounding whitespace, Around includes them.
type Mode int

const (
	Inside Mode = iota
	Around
)

// Source is the capability set a text-object matcher needs. Any buffer
// implementation that can answer these queries can host these matchers —
// this is the polymorphism the core relies on, expressed as an interface
// rather than inheritance.
type Source interface {
	LenChars() int
	LenLines() int
	CharAt(pos int) (rune, error)
	CharToLine(pos int) (int, error)
	LineToChar(lineIdx int) (int, error)
	SliceToString(start, end int) (string, error)
	LineChars(lineIdx int) (start, end int, err error)
	PrevGraphemeBoundary(pos int) (int, error)
	NextGraphemeBoundary(pos int) (int, error)
	IsGraphemeBoundary(pos int) (bool, error)
}

// Range is a half-open character range.
type Range struct {
	Start, End int
}

// Matcher finds a text object's range relative to a position.
type Matcher interface {
	// FindAt returns the object containing pos, or ok=false if pos is not
	// inside one.
	FindAt(src Source, pos int, mode Mode) (Range, bool)
	// FindNext returns the next object strictly after pos.
	FindNext(src Source, pos int, mode Mode) (Range, bool)
	// FindPrev returns the previous object strictly before pos.
	FindPrev(src Source, pos int, mode Mode) (Range, bool)
}

func charAt(src Source, pos int) (rune, bool) {
	ch, err := src.CharAt(pos)
	if err != nil {
		return 0, false
	}
	return ch, true
}

func isWordChar(ch rune) bool {
	return ch == '_' ||
		(ch >= '0' && ch <= '9') ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		ch > 0x7F // treat every non-ASCII rune as a word character
}

func isSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
