package itemized

import (
	"github.com/npillmayer/spans"
	"github.com/npillmayer/spans/styled"
)

// Iterator is a “pull”-interface for the style runs of a text.
//
//	iter := itemized.IterateText(text)
//	for iter.Next() {
//	    content, style, from, to := iter.Style()
//	    …
//	}
type Iterator struct {
	text string
	runs []styled.StyleChange
	inx  int
}

// IterateText creates an iterator over the style runs of a text.
func IterateText(text *styled.Text) *Iterator {
	iterator := &Iterator{
		text: text.Raw(),
		runs: text.StyleRuns(),
	}
	return iterator
}

// Next moves to the next style run. It returns false if there are no more runs.
func (it *Iterator) Next() bool {
	if it.inx >= len(it.runs) {
		return false
	}
	it.inx++
	return true
}

// Style returns the text and style at the current iterator position, together with
// the text indices [from…to) of the style run.
func (it *Iterator) Style() (string, spans.Style, uint64, uint64) {
	if it.inx == 0 {
		return "", spans.PlainStyle, 0, 0
	}
	s := it.runs[it.inx-1]
	from, to := s.Position, s.Position+s.Length
	return it.text[from:to], s.Style, from, to
}

// Link returns the hyperlink target of the current style run, or "".
func (it *Iterator) Link() string {
	if it.inx == 0 {
		return ""
	}
	return it.runs[it.inx-1].Link
}
