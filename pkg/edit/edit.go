// Package edit defines the Edit value type: a single half-open range replace
// that is the unit every other package in this module operates on — the
// rope applies it, selections are shifted by it, history records it, and the
// ot package transforms pairs of it against each other.
package edit

// Edit replaces the half-open character range [Start, End) with Text.
//
// An Edit is a value, not a tagged variant: Insert/Delete/Replace/NoOp are
// derived from (Start, End, Text) rather than stored as a discriminator, so
// every consumer reasons about the same three fields uniformly.
type Edit struct {
	Start int
	End   int
	Text  string
}

// New returns an Edit replacing [start, end) with text.
func New(start, end int, text string) Edit {
	return Edit{Start: start, End: end, Text: text}
}

// Insert returns an Edit that inserts text at pos without removing anything.
func Insert(pos int, text string) Edit {
	return Edit{Start: pos, End: pos, Text: text}
}

// Delete returns an Edit that removes [start, end) without inserting.
func Delete(start, end int) Edit {
	return Edit{Start: start, End: end}
}

// IsInsert reports whether e inserts without removing (Start == End).
func (e Edit) IsInsert() bool { return e.Start == e.End && e.Text != "" }

// IsDelete reports whether e removes without inserting (Text empty, Start < End).
func (e Edit) IsDelete() bool { return e.Text == "" && e.Start < e.End }

// IsReplace reports whether e both removes and inserts.
func (e Edit) IsReplace() bool { return e.Start < e.End && e.Text != "" }

// IsNoop reports whether e changes nothing at all.
func (e Edit) IsNoop() bool { return e.Start == e.End && e.Text == "" }

// Delta returns the change in document length e produces:
// len(Text) - (End - Start).
func (e Edit) Delta() int {
	return runeLen(e.Text) - (e.End - e.Start)
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Inverse returns the Edit that undoes e, given the text e originally
// replaced. Applying e then Inverse(replaced) restores the prior text.
func (e Edit) Inverse(replaced string) Edit {
	return Edit{Start: e.Start, End: e.Start + runeLen(e.Text), Text: replaced}
}

// JSON is the wire representation of an Edit: three keys, stable across
// languages, per the core's external-interface contract.
type JSON struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// ToJSON converts e to its wire representation.
func (e Edit) ToJSON() JSON {
	return JSON{Start: e.Start, End: e.End, Text: e.Text}
}

// FromJSON converts a wire representation back into an Edit.
func FromJSON(j JSON) Edit {
	return Edit{Start: j.Start, End: j.End, Text: j.Text}
}
