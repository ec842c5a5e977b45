package styled

import (
	"iter"
	"slices"
	"sort"

	"github.com/npillmayer/spans"
)

// --- Styled Text -----------------------------------------------------------

// Text is a styled text. Its text and its styles are automatically synchronized.
//
// A Text holds on to the annotations its runs have been flattened from, so
// that re-styling is equivalent to flattening all annotations in one go.
type Text struct {
	text        string
	runs        []spans.Run
	annotations []spans.Annotation
	config      spans.Config
}

// TextFromString creates a stylable text from a string. The text will consist of
// a single run in plain style (or no run at all, if s is empty).
func TextFromString(s string) *Text {
	t, _ := TextFromAnnotations(s, nil, nil)
	return t
}

// TextFromAnnotations creates a styled text from a string and its annotations.
// config may be nil, selecting spans.DefaultConfig. Malformed annotations
// result in an error wrapping spans.ErrMalformedAnnotation.
func TextFromAnnotations(s string, annotations []spans.Annotation, config *spans.Config) (*Text, error) {
	if config == nil {
		config = spans.DefaultConfig()
	}
	runs, err := spans.NewFlattener(config).Flatten(s, annotations)
	if err != nil {
		return nil, err
	}
	return &Text{
		text:        s,
		runs:        runs,
		annotations: slices.Clone(annotations),
		config:      *config,
	}, nil
}

// TextFromRuns creates a styled text from a sequence of runs, as produced by
// spans.Flatten. Runs have to be contiguous and start at position 0.
// config should be the configuration the runs have been flattened with; it may
// be nil, selecting spans.DefaultConfig. It is used for subsequent calls to Style.
//
// The annotations of the text are re-constructed from the runs (see
// spans.Run.Annotations). Hyperlinks with an empty target cannot be told apart
// from their link color and underline, and are not re-constructed as links.
func TextFromRuns(runs []spans.Run, config *spans.Config) (*Text, error) {
	if config == nil {
		config = spans.DefaultConfig()
	}
	t := &Text{
		text:        spans.Runs(runs).Text(),
		runs:        make([]spans.Run, len(runs)),
		annotations: spans.Runs(runs).Annotations(),
		config:      *config,
	}
	pos := uint64(0)
	for i, r := range runs {
		if r.Pos != pos || r.Len() == 0 {
			T().Errorf("styled text: run #%d at %d is not contiguous", i, r.Pos)
			return nil, spans.ErrIllegalArguments
		}
		t.runs[i] = r
		pos = r.End()
	}
	return t, nil
}

// Raw returns the text without any styles.
func (t *Text) Raw() string {
	return t.text
}

// Len returns the length of the text in bytes.
func (t *Text) Len() uint64 {
	return uint64(len(t.text))
}

// Runs returns a copy of the text's style runs.
func (t *Text) Runs() spans.Runs {
	runs := make(spans.Runs, len(t.runs))
	copy(runs, t.runs)
	return runs
}

// runAt returns the index of the run containing byte position pos.
func (t *Text) runAt(pos uint64) (int, error) {
	if pos >= t.Len() {
		return -1, spans.ErrIndexOutOfBounds
	}
	i := sort.Search(len(t.runs), func(i int) bool {
		return t.runs[i].End() > pos
	})
	return i, nil
}

// StyleAt returns the style at byte position pos of the styled text, together
// with the start position of the style run containing pos.
func (t *Text) StyleAt(pos uint64) (spans.Style, uint64, error) {
	i, err := t.runAt(pos)
	if err != nil {
		return spans.PlainStyle, pos, err
	}
	return t.runs[i].Style, t.runs[i].Pos, nil
}

// LinkAt returns the hyperlink target at byte position pos, if any. This is what
// a rendering surface needs to resolve a click.
func (t *Text) LinkAt(pos uint64) (string, bool) {
	i, err := t.runAt(pos)
	if err != nil || !t.runs[i].IsLink() {
		return "", false
	}
	return t.runs[i].Link, true
}

// EachStyleRun applies a function to each run of a single style.
// pos is the text position of this run of text within the overall
// styled text.
//
// This may be thought of as a “push”-interface to access style runs for a text.
// For a “pull”-interface please refer to interface `itemized.Iterator`.
func (t *Text) EachStyleRun(f func(content string, sty spans.Style, pos uint64) error) error {
	for _, r := range t.runs {
		if err := f(r.Text, r.Style, r.Pos); err != nil {
			return err
		}
	}
	return nil
}

// RangeStyleRun returns an iterator over pairs of (content, style).
func (t *Text) RangeStyleRun() iter.Seq2[string, spans.Style] {
	return func(yield func(string, spans.Style) bool) {
		for _, r := range t.runs {
			if !yield(r.Text, r.Style) {
				return
			}
		}
	}
}

// Style applies annotations on top of the existing styles. Annotations are
// relative to the start of the text and are applied in order, after all styles
// already present. If any annotation is malformed, t is left unchanged and
// an error is returned.
func (t *Text) Style(annotations ...spans.Annotation) error {
	all := append(slices.Clone(t.annotations), annotations...)
	runs, err := spans.NewFlattener(&t.config).Flatten(t.text, all)
	if err != nil {
		return err
	}
	T().Debugf("styled text: re-styled into %d runs", len(runs))
	t.runs, t.annotations = runs, all
	return nil
}

// Annotations returns a copy of the annotations the text's styles have been
// flattened from, in application order.
func (t *Text) Annotations() []spans.Annotation {
	return slices.Clone(t.annotations)
}

// Section copies a piece of styled text, delimited by parameters from and to.
// Runs are cut at from and to, and positions are re-based to from.
func Section(t *Text, from, to uint64) (*Text, error) {
	if from > to || to > t.Len() {
		return nil, spans.ErrIndexOutOfBounds
	}
	section := &Text{text: t.text[from:to], config: t.config}
	for _, a := range t.annotations {
		l, h := max(a.Start, from), min(a.End, to)
		if l >= h {
			continue
		}
		a.Start, a.End = l-from, h-from
		section.annotations = append(section.annotations, a)
	}
	for _, r := range t.runs {
		l, h := max(r.Pos, from), min(r.End(), to)
		if l >= h {
			continue
		}
		section.runs = append(section.runs, spans.Run{
			Text:  t.text[l:h],
			Style: r.Style,
			Link:  r.Link,
			Pos:   l - from,
		})
	}
	return section, nil
}

// StyleChange holds a style and the text position where the style run starts.
type StyleChange struct {
	Style    spans.Style
	Link     string
	Position uint64
	Length   uint64
}

// StyleRuns returns a slice of style runs for a styled text.
func (t *Text) StyleRuns() []StyleChange {
	slice := make([]StyleChange, len(t.runs))
	for i, r := range t.runs {
		slice[i] = StyleChange{
			Style:    r.Style,
			Link:     r.Link,
			Position: r.Pos,
			Length:   r.Len(),
		}
	}
	return slice
}

// LinkRegion is a clickable range of text.
type LinkRegion struct {
	Target   string
	From, To uint64
}

// Links returns the hyperlink regions of a text, left to right. Adjacent runs
// with the same target form one region.
func (t *Text) Links() []LinkRegion {
	var links []LinkRegion
	for _, r := range t.runs {
		if !r.IsLink() {
			continue
		}
		if n := len(links); n > 0 && links[n-1].Target == r.Link && links[n-1].To == r.Pos {
			links[n-1].To = r.End()
			continue
		}
		links = append(links, LinkRegion{Target: r.Link, From: r.Pos, To: r.End()})
	}
	return links
}
