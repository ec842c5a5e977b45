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
	"sync"

	"github.com/npillmayer/spans"
	"github.com/npillmayer/spans/styled"
	"github.com/npillmayer/spans/styled/itemized"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // wrap lines at this width (in “en”s); 0 means no wrapping
	Context   *uax11.Context // context for character widths
}

// Format is an interface for formatting drivers, given an io.Writer
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	StyledText(string, spans.Style, string, io.Writer)
	Newline(io.Writer)
}

var setupGraphemes sync.Once

// Output formats a styled text using a given formatter.
//
// Neither of the arguments may be nil. However, it is safe to have config.Context
// set to nil. In this case, uax11.LatinContext is used.
func Output(text *styled.Text, out io.Writer, config *Config, format Format) error {
	//
	if text == nil || config == nil || format == nil {
		return spans.ErrIllegalArguments
	}
	context := config.Context
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	raw := text.Raw()
	breaks := firstFit(raw, config.LineWidth, context)
	format.Preamble(out)
	start := uint64(0)
	for i, pos := range breaks {
		end := pos
		for end > start && (raw[end-1] == '\n' || raw[end-1] == '\r') {
			end--
		}
		line, err := styled.Section(text, start, end)
		if err != nil {
			T().Errorf("error styled.Section = %v", err)
			return err
		}
		T().Infof("[%3d] \"%s\"", i, line.Raw())
		T().Debugf("      with styles = %v", line.StyleRuns())
		iter := itemized.IterateText(line)
		for iter.Next() {
			content, style, from, to := iter.Style()
			T().Debugf("%v: %d…%d = \"%s\"", style, from, to, content)
			format.StyledText(content, style, iter.Link(), out)
		}
		format.Newline(out)
		start = pos
	}
	format.Postamble(out)
	return nil
}

// Print outputs a styled text to stdout, using a console format.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print(text *styled.Text, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	consoleFmt := NewConsoleFixedWidthFormat(nil)
	return Output(text, os.Stdout, config, consoleFmt)
}
