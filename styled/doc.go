/*
Package styled makes styled text.

A styled.Text is a text together with its runs of uniform style, as computed
by spans.Flatten. Texts and runs are kept synchronized: re-styling a range of
text re-flattens the runs, sectioning a text cuts the runs at the section
boundaries.

Texts are usually created either from a host's annotations,

	text, err := styled.TextFromAnnotations(s, annotations, nil)

or incrementally, with a builder which tracks open styles on a stack:

	b := styled.NewTextBuilder(nil)
	b.Append("Hello ")
	b.Push(spans.Bold(0, 0))
	b.Append("World")
	b.Pop()
	text, err := b.Text()

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package styled

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
