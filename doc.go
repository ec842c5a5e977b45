/*
Package spans flattens overlapping style annotations of a text into runs.

Styled Text from Annotations

Host platforms describe rich text as a plain string plus a list of style
annotations, each covering a half-open byte range [start, end) of the string:
bold ranges, color ranges, hyperlinks, font sizes and so on. Annotations may
nest, overlap partially or cover identical ranges. Text-rendering surfaces, on
the other hand, want a single sequence of disjoint runs, each of uniform style.

Package spans computes that sequence. For every range of text where the set of
active annotations is constant, it folds the annotations in source order into
one effective Style:

▪︎ bold, italic, underline and strikethrough are OR-combined

▪︎ foreground and background colors are last-applied-wins, per channel

▪︎ an absolute font size replaces the current size, a relative one multiplies it

▪︎ hyperlinks are last-applied-wins and force a link color plus underline

Clients call

	runs, err := spans.Flatten("The quick brown fox", []spans.Annotation{
	    spans.Bold(4, 9),
	    spans.Foreground(spans.Red, 6, 15),
	})

and receive runs "The ", "qu" (bold), "ick" (bold, red), " brown" (red), " fox".

Flattening is a pure function of its inputs. It never clamps offsets: an
annotation reaching outside the text is rejected with ErrMalformedAnnotation,
and no partial output is produced. Annotation kinds unknown to this package
are style-neutral.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package spans

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SpanError is an error type for the spans module
type SpanError string

func (e SpanError) Error() string {
	return string(e)
}

// ErrMalformedAnnotation is flagged whenever an annotation's offsets violate
// 0 ≤ start ≤ end ≤ len(text), or do not fall on a character boundary.
const ErrMalformedAnnotation = SpanError("malformed annotation")

// ErrIndexOutOfBounds is flagged whenever a text position is
// greater than the length of the text.
const ErrIndexOutOfBounds = SpanError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SpanError("illegal arguments")

// AnnotationError reports the annotation which caused an input to be rejected.
// It wraps ErrMalformedAnnotation.
type AnnotationError struct {
	Index      int        // position of the annotation in the input slice
	Annotation Annotation // the offending annotation
	Length     uint64     // length of the annotated text
	Reason     string
}

func (e *AnnotationError) Error() string {
	return fmt.Sprintf("%s #%d %v (text length %d): %s", ErrMalformedAnnotation,
		e.Index, e.Annotation, e.Length, e.Reason)
}

// Unwrap returns ErrMalformedAnnotation.
func (e *AnnotationError) Unwrap() error {
	return ErrMalformedAnnotation
}
