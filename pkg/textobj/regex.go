package textobj

import (
	"sync"

	"github.com/dlclark/regexp2"
)

// RegexMatcher matches a compiled pattern line by line: every match on a
// line is considered, and patterns never span line breaks.
// It backs the built-in URL/Email/Number/HexColor text objects, and can
// also wrap a caller-supplied pattern.
type RegexMatcher struct {
	re *regexp2.Regexp
}

// NewRegexMatcher compiles pattern once and returns a matcher for it.
func NewRegexMatcher(pattern string) (RegexMatcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return RegexMatcher{}, err
	}
	return RegexMatcher{re: re}, nil
}

var (
	urlOnce, emailOnce, numberOnce, hexOnce sync.Once
	urlMatcher, emailMatcher                RegexMatcher
	numberMatcher, hexMatcher               RegexMatcher
)

// URL returns a matcher for http(s) URLs.
func URL() RegexMatcher {
	urlOnce.Do(func() {
		urlMatcher, _ = NewRegexMatcher(`https?://[^\s]+`)
	})
	return urlMatcher
}

// Email returns a matcher for email addresses.
func Email() RegexMatcher {
	emailOnce.Do(func() {
		emailMatcher, _ = NewRegexMatcher(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	})
	return emailMatcher
}

// Number returns a matcher for integer and floating-point literals.
func Number() RegexMatcher {
	numberOnce.Do(func() {
		numberMatcher, _ = NewRegexMatcher(`-?\d+(\.\d+)?`)
	})
	return numberMatcher
}

// HexColor returns a matcher for #rgb/#rrggbb style color literals.
func HexColor() RegexMatcher {
	hexOnce.Do(func() {
		hexMatcher, _ = NewRegexMatcher(`#(?:[0-9a-fA-F]{3}){1,2}\b`)
	})
	return hexMatcher
}

// lineMatches returns every match on the given line as (start, end) rune
// offsets relative to the line's own start.
func (m RegexMatcher) lineMatches(text string) [][2]int {
	var out [][2]int
	match, err := m.re.FindStringMatch(text)
	for err == nil && match != nil {
		out = append(out, [2]int{match.Index, match.Index + match.Length})
		match, err = m.re.FindNextMatch(match)
	}
	return out
}

func (m RegexMatcher) FindAt(src Source, pos int, _ Mode) (Range, bool) {
	lineIdx, err := src.CharToLine(pos)
	if err != nil {
		return Range{}, false
	}
	start, end, err := src.LineChars(lineIdx)
	if err != nil {
		return Range{}, false
	}
	text, err := src.SliceToString(start, end)
	if err != nil {
		return Range{}, false
	}
	for _, mt := range m.lineMatches(text) {
		s, e := start+mt[0], start+mt[1]
		if pos >= s && pos < e {
			return Range{Start: s, End: e}, true
		}
	}
	return Range{}, false
}

func (m RegexMatcher) FindNext(src Source, pos int, _ Mode) (Range, bool) {
	lineIdx, err := src.CharToLine(pos)
	if err != nil {
		return Range{}, false
	}
	for ; lineIdx < src.LenLines(); lineIdx++ {
		start, end, err := src.LineChars(lineIdx)
		if err != nil {
			return Range{}, false
		}
		text, err := src.SliceToString(start, end)
		if err != nil {
			return Range{}, false
		}
		for _, mt := range m.lineMatches(text) {
			s, e := start+mt[0], start+mt[1]
			if s > pos {
				return Range{Start: s, End: e}, true
			}
		}
	}
	return Range{}, false
}

func (m RegexMatcher) FindPrev(src Source, pos int, _ Mode) (Range, bool) {
	lineIdx, err := src.CharToLine(pos)
	if err != nil {
		return Range{}, false
	}
	for ; lineIdx >= 0; lineIdx-- {
		start, end, err := src.LineChars(lineIdx)
		if err != nil {
			return Range{}, false
		}
		text, err := src.SliceToString(start, end)
		if err != nil {
			return Range{}, false
		}
		var bestS, bestE int
		found := false
		for _, mt := range m.lineMatches(text) {
			s, e := start+mt[0], start+mt[1]
			if e < pos {
				bestS, bestE, found = s, e, true
			}
		}
		if found {
			return Range{Start: bestS, End: bestE}, true
		}
	}
	return Range{}, false
}
