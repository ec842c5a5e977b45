package spans

import (
	"fmt"
	"strings"
)

// Run is a maximal piece of text sharing one effective style and link target.
type Run struct {
	Text  string // the text of the run, a substring of the source text
	Style Style  // effective style of the run
	Link  string // hyperlink target, if any
	Pos   uint64 // byte position of the run within the source text
}

// Len returns the length of the run in bytes.
func (r Run) Len() uint64 {
	return uint64(len(r.Text))
}

// End returns the byte position following the run.
func (r Run) End() uint64 {
	return r.Pos + r.Len()
}

// IsLink is true if the run is part of a hyperlink.
func (r Run) IsLink() bool {
	return r.Link != ""
}

// looksLike is true if two runs may be merged into one.
func (r Run) looksLike(other Run) bool {
	return r.Style == other.Style && r.Link == other.Link
}

func (r Run) String() string {
	if r.IsLink() {
		return fmt.Sprintf("%d:%q{%s→%s}", r.Pos, r.Text, r.Style, r.Link)
	}
	return fmt.Sprintf("%d:%q{%s}", r.Pos, r.Text, r.Style)
}

// Annotations returns primitive annotations which, applied to the run's
// range of the source text in the returned order, reproduce the run's style
// and link target under the configuration which produced the run.
func (r Run) Annotations() []Annotation {
	from, to := r.Pos, r.End()
	var as []Annotation
	if r.IsLink() {
		as = append(as, Link(r.Link, from, to))
	}
	st := r.Style
	if st.Flags.Has(BoldFlag) {
		as = append(as, Bold(from, to))
	}
	if st.Flags.Has(ItalicFlag) {
		as = append(as, Italic(from, to))
	}
	if st.Flags.Has(UnderlineFlag) {
		as = append(as, Underline(from, to))
	}
	if st.Flags.Has(StrikethroughFlag) {
		as = append(as, Strikethrough(from, to))
	}
	if st.HasFg {
		as = append(as, Foreground(st.Fg, from, to))
	}
	if st.HasBg {
		as = append(as, Background(st.Bg, from, to))
	}
	switch st.Size.Unit {
	case SP:
		as = append(as, AbsoluteSize(st.Size.Value, from, to))
	case EM:
		as = append(as, RelativeSize(st.Size.Value, from, to))
	}
	if st.Family != "" {
		as = append(as, Family(st.Family, from, to))
	}
	return as
}

// Coalesce merges adjacent runs with identical style and link target. The
// input slice is modified in place and the shortened slice is returned.
func Coalesce(runs []Run) []Run {
	if len(runs) < 2 {
		return runs
	}
	out := runs[:1]
	for _, r := range runs[1:] {
		last := &out[len(out)-1]
		if last.looksLike(r) && last.End() == r.Pos {
			last.Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}

// Runs is a sequence of runs, as produced by Flatten.
type Runs []Run

// Text concatenates the texts of all runs.
func (rs Runs) Text() string {
	var sb strings.Builder
	for _, r := range rs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Annotations returns annotations reproducing all runs, see Run.Annotations.
func (rs Runs) Annotations() []Annotation {
	var as []Annotation
	for _, r := range rs {
		as = append(as, r.Annotations()...)
	}
	return as
}

// String returns an informational string for these runs. Clients must not rely
// on the format of the string.
func (rs Runs) String() string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
