package styled

import (
	"strings"

	"github.com/npillmayer/spans"
)

// TextBuilder is for building styled text from fragments and nested styles.
//
// Styles are pushed onto a stack before the text they cover is appended, and
// popped afterwards. A pushed annotation's start and end offsets are ignored;
// they are set by Push and Pop from the current length of the text.
// Annotations are applied in the order they have been pushed.
type TextBuilder struct {
	text        strings.Builder
	config      *spans.Config
	annotations []spans.Annotation
	open        []int // stack of indices into annotations
	done        bool
}

// NewTextBuilder creates a new and empty builder for styled.Text.
// config may be nil, selecting spans.DefaultConfig.
func NewTextBuilder(config *spans.Config) *TextBuilder {
	return &TextBuilder{config: config}
}

// Len returns the number of bytes appended so far.
func (b *TextBuilder) Len() uint64 {
	return uint64(b.text.Len())
}

// Append appends a text fragment at the end of the text to build.
func (b *TextBuilder) Append(s string) error {
	if b.done {
		return spans.ErrIllegalArguments
	}
	b.text.WriteString(s)
	return nil
}

// AppendStyled appends a text fragment, styled by a single annotation.
// This is a shortcut for Push(a), Append(s), Pop().
func (b *TextBuilder) AppendStyled(s string, a spans.Annotation) error {
	if err := b.Push(a); err != nil {
		return err
	}
	b.text.WriteString(s)
	_, err := b.Pop()
	return err
}

// Push opens a style at the current end of the text.
func (b *TextBuilder) Push(a spans.Annotation) error {
	if b.done {
		return spans.ErrIllegalArguments
	}
	a.Start, a.End = b.Len(), b.Len()
	b.open = append(b.open, len(b.annotations))
	b.annotations = append(b.annotations, a)
	return nil
}

// Pop closes the most recently opened style at the current end of the text
// and returns it.
func (b *TextBuilder) Pop() (spans.Annotation, error) {
	if len(b.open) == 0 {
		T().Errorf("styled text builder: pop on empty style stack")
		return spans.Annotation{}, spans.ErrIllegalArguments
	}
	top := b.open[len(b.open)-1]
	b.open = b.open[:len(b.open)-1]
	b.annotations[top].End = b.Len()
	return b.annotations[top], nil
}

// Depth returns the number of open styles.
func (b *TextBuilder) Depth() int {
	return len(b.open)
}

// Text returns the styled text which this builder is holding up to now.
// Styles still open are closed at the end of the text.
// It is illegal to continue adding fragments after `Text` has been called,
// but `Text` may be called multiple times.
func (b *TextBuilder) Text() (*Text, error) {
	b.done = true
	for len(b.open) > 0 {
		b.Pop()
	}
	if b.text.Len() == 0 {
		T().Debugf("styled text builder: text is void")
	}
	return TextFromAnnotations(b.text.String(), b.annotations, b.config)
}

// Annotations returns a copy of the annotations collected so far, in
// application order. Open styles end at the current length of the text.
func (b *TextBuilder) Annotations() []spans.Annotation {
	as := make([]spans.Annotation, len(b.annotations))
	copy(as, b.annotations)
	for _, inx := range b.open {
		as[inx].End = b.Len()
	}
	return as
}
