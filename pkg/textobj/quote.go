package textobj

// QuoteMatcher matches a pair of identical quote characters on the same
// line as pos, honoring backslash escapes. An escaping backslash has a
// lifetime of exactly one following character: \\" does not escape the
// quote, but \" does.
type QuoteMatcher struct {
	Quote rune
}

func SingleQuote() QuoteMatcher { return QuoteMatcher{Quote: '\''} }
func DoubleQuote() QuoteMatcher { return QuoteMatcher{Quote: '"'} }
func Backtick() QuoteMatcher    { return QuoteMatcher{Quote: '`'} }

func (q QuoteMatcher) FindAt(src Source, pos int, mode Mode) (Range, bool) {
	quotes, lineStart := q.lineQuotes(src, pos)
	for i := 0; i+1 < len(quotes); i += 2 {
		open, close := quotes[i], quotes[i+1]
		if pos >= lineStart+open && pos <= lineStart+close {
			return q.bound(lineStart+open, lineStart+close, mode), true
		}
	}
	return Range{}, false
}

func (q QuoteMatcher) FindNext(src Source, pos int, mode Mode) (Range, bool) {
	quotes, lineStart := q.lineQuotes(src, pos)
	for i := 0; i+1 < len(quotes); i += 2 {
		open, close := lineStart+quotes[i], lineStart+quotes[i+1]
		if open > pos {
			return q.bound(open, close, mode), true
		}
	}
	return Range{}, false
}

func (q QuoteMatcher) FindPrev(src Source, pos int, mode Mode) (Range, bool) {
	quotes, lineStart := q.lineQuotes(src, pos)
	for i := len(quotes) - 2; i >= 0; i -= 2 {
		open, close := lineStart+quotes[i], lineStart+quotes[i+1]
		if close < pos {
			return q.bound(open, close, mode), true
		}
	}
	return Range{}, false
}

func (q QuoteMatcher) bound(open, close int, mode Mode) Range {
	if mode == Around {
		return Range{Start: open, End: close + 1}
	}
	return Range{Start: open + 1, End: close}
}

// lineQuotes returns the line-relative offsets of unescaped quote
// characters on the line containing pos, paired open/close in order, along
// with that line's starting character offset. An unterminated trailing
// quote is dropped.
func (q QuoteMatcher) lineQuotes(src Source, pos int) ([]int, int) {
	line, err := src.CharToLine(pos)
	if err != nil {
		return nil, 0
	}
	start, end, err := src.LineChars(line)
	if err != nil {
		return nil, 0
	}
	text, err := src.SliceToString(start, end)
	if err != nil {
		return nil, 0
	}

	var offsets []int
	escaped := false
	i := 0
	for _, ch := range text {
		if escaped {
			escaped = false
		} else if ch == '\\' {
			escaped = true
		} else if ch == q.Quote {
			offsets = append(offsets, i)
		}
		i++
	}
	if len(offsets)%2 == 1 {
		offsets = offsets[:len(offsets)-1]
	}
	return offsets, start
}
