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
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/spans"
	"github.com/npillmayer/spans/styled"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ControlCodes holds certain escape sequences which a terminal uses to
// start and end output, and to separate lines.
type ControlCodes struct {
	Preamble, Postamble []byte
	Newline             []byte
}

// DefaultCodes is the default set of control codes.
var DefaultCodes = ControlCodes{
	Preamble:  []byte{},
	Postamble: []byte{},
	Newline:   []byte{'\n'},
}

// ConsoleFixedWidth is a type for outputting formatted text to a console with
// a fixed width font.
//
// Styles are visualized with SGR attributes. Colors are mapped to the nearest
// of the 16 standard terminal colors, as terminals differ in their support of
// 24-bit colors. Hyperlinks are output as OSC 8 sequences, which are ignored by
// terminals not supporting them.
type ConsoleFixedWidth struct {
	Codes      *ControlCodes
	ForceColor bool // output escape sequences even if stdout is not a terminal
	Links      bool // output OSC 8 hyperlinks
	colors     map[spans.Style]*color.Color
}

// Print outputs a styled text to stdout.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func (fw *ConsoleFixedWidth) Print(text *styled.Text, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(text, os.Stdout, config, fw)
}

// NewConsoleFixedWidthFormat creates a new formatter. It is to be used for consoles
// with a fixed width font.
//
// codes is a table of escape sequences. It may be nil, selecting DefaultCodes.
func NewConsoleFixedWidthFormat(codes *ControlCodes) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{
		Codes:  &DefaultCodes,
		Links:  true,
		colors: make(map[spans.Style]*color.Color),
	}
	if codes != nil {
		fw.Codes = codes
	}
	return fw
}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text (item). It uses SGR attributes to visualize styles.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) StyledText(s string, style spans.Style, link string, w io.Writer) {
	if link = stripControls(link); fw.Links && link != "" {
		io.WriteString(w, "\x1b]8;;"+link+"\x1b\\")
		defer io.WriteString(w, "\x1b]8;;\x1b\\")
	}
	if style.IsPlain() {
		io.WriteString(w, s)
		return
	}
	io.WriteString(w, fw.colorFor(style).Sprint(s))
}

// stripControls removes C0 control characters and DEL from a link target, as
// they would terminate the OSC 8 sequence.
func stripControls(link string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, link)
}

func (fw *ConsoleFixedWidth) colorFor(style spans.Style) *color.Color {
	if c, ok := fw.colors[style]; ok {
		return c
	}
	var attrs []color.Attribute
	if style.Bold() {
		attrs = append(attrs, color.Bold)
	}
	if style.Italic() {
		attrs = append(attrs, color.Italic)
	}
	if style.Underline() {
		attrs = append(attrs, color.Underline)
	}
	if style.Strikethrough() {
		attrs = append(attrs, color.CrossedOut)
	}
	if style.HasFg {
		attrs = append(attrs, nearestANSI(style.Fg))
	}
	if style.HasBg {
		attrs = append(attrs, nearestANSI(style.Bg)+10) // background attributes are offset by 10
	}
	c := color.New(attrs...)
	if fw.ForceColor {
		c.EnableColor()
	}
	fw.colors[style] = c
	return c
}

// Preamble is called by the output driver before a text will be formatted.
// It outputs the `Preamble` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) {
	w.Write(fw.Codes.Preamble)
}

// Postamble will be called after a text has been formatted.
// It outputs the `Postamble` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) {
	w.Write(fw.Codes.Postamble)
}

// Newline will be called at the end of every formatted line of text.
// It outputs the `Newline` escape sequence from fw.Codes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Newline(w io.Writer) {
	w.Write(fw.Codes.Newline)
}

// --- Terminal colors -------------------------------------------------------

type ansiColor struct {
	attr color.Attribute
	rgb  colorful.Color
}

// xterm's default palette for the 16 standard colors
var ansiPalette = []ansiColor{
	{color.FgBlack, colorful.Color{R: 0, G: 0, B: 0}},
	{color.FgRed, colorful.Color{R: 0.804, G: 0, B: 0}},
	{color.FgGreen, colorful.Color{R: 0, G: 0.804, B: 0}},
	{color.FgYellow, colorful.Color{R: 0.804, G: 0.804, B: 0}},
	{color.FgBlue, colorful.Color{R: 0, G: 0, B: 0.933}},
	{color.FgMagenta, colorful.Color{R: 0.804, G: 0, B: 0.804}},
	{color.FgCyan, colorful.Color{R: 0, G: 0.804, B: 0.804}},
	{color.FgWhite, colorful.Color{R: 0.898, G: 0.898, B: 0.898}},
	{color.FgHiBlack, colorful.Color{R: 0.498, G: 0.498, B: 0.498}},
	{color.FgHiRed, colorful.Color{R: 1, G: 0, B: 0}},
	{color.FgHiGreen, colorful.Color{R: 0, G: 1, B: 0}},
	{color.FgHiYellow, colorful.Color{R: 1, G: 1, B: 0}},
	{color.FgHiBlue, colorful.Color{R: 0.361, G: 0.361, B: 1}},
	{color.FgHiMagenta, colorful.Color{R: 1, G: 0, B: 1}},
	{color.FgHiCyan, colorful.Color{R: 0, G: 1, B: 1}},
	{color.FgHiWhite, colorful.Color{R: 1, G: 1, B: 1}},
}

// nearestANSI finds the foreground attribute closest to c, measured in CIE-L*a*b*.
// The alpha channel is ignored.
func nearestANSI(c spans.Color) color.Attribute {
	target, _ := colorful.MakeColor(c | 0xff000000)
	best, dist := ansiPalette[0].attr, target.DistanceLab(ansiPalette[0].rgb)
	for _, p := range ansiPalette[1:] {
		if d := target.DistanceLab(p.rgb); d < dist {
			best, dist = p.attr, d
		}
	}
	return best
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
