/*
Package formatter outputs styled text for inspection, either on a console
with a fixed-width font or as an HTML fragment.

Rendering runs of styled text is the business of a host's text widgets. However,
when developing or testing the style rules of annotated text, it is handy to
look at the flattened runs without such a host. Terminals and browsers are the
output targets which are always at hand. This package helps performing the
following tasks:

▪︎ Select a formatter for a given output device

▪︎ Create a suitable formatting configuration

▪︎ Break a styled text into lines and output it to the device

Line breaking applies rules from UAX#14 (line breaking), UAX#29 (graphemes)
and UAX#11 (character width). This package does not constitute a typesetter. We
will not deal with fonts, glyphing or variable text widths; font sizes and
families of a style are output by the HTML formatter only.

API

Clients select an instance of type formatter.Format and possibly configure it
to their needs.

	text, _ := styled.TextFromAnnotations("The quick brown fox jumps over the lazy dog!",
	    []spans.Annotation{spans.Bold(4, 9)}, nil)  // want 'quick' in boldface
	console := formatter.NewConsoleFixedWidthFormat(nil)
	console.Print(text, nil)

formatter.Format is an interface type and this package offers two implementations,
one for console output (like in the example above) and one for HTML output.

Status

Intended for inspection and tests, API not stable.

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
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
