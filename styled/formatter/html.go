package formatter

/*
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

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/spans"
	"github.com/npillmayer/spans/styled"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML is a format for simple HTML output.
//
// Every run of text is output as a `<span>` with inline CSS for its style, and
// runs which are part of a hyperlink are wrapped into `<a>` elements.
type HTML struct {
	Class string // optional class attribute of the enclosing paragraph
}

// NewHTML creates an HTML formatter.
func NewHTML() *HTML {
	return &HTML{}
}

// Print outputs a styled text as HTML.
//
// If parameter config is nil, a default configuration will be used, which
// does not wrap lines.
func (h *HTML) Print(text *styled.Text, w io.Writer, config *Config) error {
	if config == nil {
		config = &Config{}
	}
	return Output(text, w, config, h)
}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text (item).
// (Part of interface Format)
func (h *HTML) StyledText(s string, style spans.Style, link string, w io.Writer) {
	n := &html.Node{Type: html.TextNode, Data: s}
	if !style.IsPlain() {
		span := &html.Node{
			Type:     html.ElementNode,
			Data:     "span",
			DataAtom: atom.Span,
			Attr:     []html.Attribute{{Key: "style", Val: CSS(style)}},
		}
		span.AppendChild(n)
		n = span
	}
	if link != "" {
		a := &html.Node{
			Type:     html.ElementNode,
			Data:     "a",
			DataAtom: atom.A,
			Attr:     []html.Attribute{{Key: "href", Val: link}},
		}
		a.AppendChild(n)
		n = a
	}
	if err := html.Render(w, n); err != nil {
		T().Errorf("html formatter: %v", err)
	}
}

// Preamble is called by the output driver before a text will be formatted.
// It outputs a `<p>` tag.
// (Part of interface Format)
func (h *HTML) Preamble(w io.Writer) {
	if h.Class != "" {
		fmt.Fprintf(w, "<p class=\"%s\">", html.EscapeString(h.Class))
		return
	}
	io.WriteString(w, "<p>")
}

// Postamble will be called after a text has been formatted.
// It outputs a closing `</p>` tag.
// (Part of interface Format)
func (h *HTML) Postamble(w io.Writer) {
	io.WriteString(w, "</p>\n")
}

// Newline will be called at the end of every formatted line of text.
// It outputs a `<br>` tag.
// (Part of interface Format)
func (h *HTML) Newline(w io.Writer) {
	io.WriteString(w, "<br>\n")
}

// CSS returns inline CSS declarations for a style.
func CSS(style spans.Style) string {
	var decl []string
	if style.Bold() {
		decl = append(decl, "font-weight:bold")
	}
	if style.Italic() {
		decl = append(decl, "font-style:italic")
	}
	var deco []string
	if style.Underline() {
		deco = append(deco, "underline")
	}
	if style.Strikethrough() {
		deco = append(deco, "line-through")
	}
	if len(deco) > 0 {
		decl = append(decl, "text-decoration:"+strings.Join(deco, " "))
	}
	if style.HasFg {
		decl = append(decl, "color:"+cssColor(style.Fg))
	}
	if style.HasBg {
		decl = append(decl, "background-color:"+cssColor(style.Bg))
	}
	switch style.Size.Unit {
	case spans.SP:
		decl = append(decl, fmt.Sprintf("font-size:%gpx", style.Size.Value))
	case spans.EM:
		decl = append(decl, fmt.Sprintf("font-size:%gem", style.Size.Value))
	}
	if style.Family != "" {
		decl = append(decl, "font-family:"+style.Family)
	}
	return strings.Join(decl, ";")
}

func cssColor(c spans.Color) string {
	a, r, g, b := c.ARGB()
	if a == 0xff {
		return c.Hex()
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", r, g, b, float64(a)/255)
}
