package formatter

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spans"
	"github.com/npillmayer/spans/styled"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

func TestFirstFit(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	text, err := styled.TextFromAnnotations("The quick brown fox jumps over the lazy dog!",
		[]spans.Annotation{spans.Bold(4, 9)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	config := &Config{
		LineWidth: 30,
		Context:   uax11.LatinContext,
	}
	if err = Output(text, io.Discard, config, rec); err != nil {
		t.Fatal(err)
	}
	t.Logf("lines = %q", rec.lines)
	if len(rec.lines) != 2 {
		t.Fatalf("expected 2 lines, have %d", len(rec.lines))
	}
	if strings.Join(rec.lines, "") != text.Raw() {
		t.Errorf("lines do not reproduce text: %q", rec.lines)
	}
	for _, line := range rec.lines {
		w := uax11.StringWidth(grapheme.StringFromString(strings.TrimSpace(line)), uax11.LatinContext)
		if w > 30 {
			t.Errorf("line %q exceeds line width", line)
		}
	}
	if rec.styled[0] != "quick" {
		t.Errorf("expected 'quick' to be output in bold, have %q", rec.styled)
	}
}

func TestMandatoryBreaks(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	text := styled.TextFromString("first\nsecond")
	for _, width := range []int{40, 0, -1} {
		rec := &recorder{}
		if err := Output(text, io.Discard, &Config{LineWidth: width}, rec); err != nil {
			t.Fatal(err)
		}
		if len(rec.lines) != 2 || rec.lines[0] != "first" || rec.lines[1] != "second" {
			t.Errorf("width %d: expected lines [first second], have %q", width, rec.lines)
		}
	}
	if breaks := firstFit("ab\n\ncd\n", 0, nil); len(breaks) != 3 || breaks[2] != 7 {
		t.Errorf("expected breaks [3 4 7], have %v", breaks)
	}
}

func TestHTMLNewlinesWithoutWrapping(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	text, err := styled.TextFromAnnotations("ab\ncd", []spans.Annotation{spans.Bold(0, 5)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	if err := NewHTML().Print(text, out, &Config{LineWidth: 0}); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	t.Logf("html = %s", s)
	expected := `<p><span style="font-weight:bold">ab</span><br>` + "\n" +
		`<span style="font-weight:bold">cd</span><br>` + "\n</p>\n"
	if s != expected {
		t.Errorf("expected newline to be output as <br>, have %q", s)
	}
}

func TestConsole(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	text, err := styled.TextFromAnnotations("plain bold link", []spans.Annotation{
		spans.Bold(6, 10),
		spans.Link("https://example.org", 11, 15),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	console := NewConsoleFixedWidthFormat(nil)
	console.ForceColor = true
	out := &bytes.Buffer{}
	if err := Output(text, out, &Config{}, console); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	t.Logf("console output = %q", s)
	if !strings.HasPrefix(s, "plain ") || !strings.HasSuffix(s, "\n") {
		t.Errorf("unexpected console output %q", s)
	}
	if !strings.Contains(s, "\x1b[1mbold\x1b[0m") {
		t.Errorf("expected bold SGR sequence in %q", s)
	}
	if !strings.Contains(s, "\x1b]8;;https://example.org\x1b\\") {
		t.Errorf("expected OSC 8 hyperlink in %q", s)
	}
}

func TestConsoleLinkControls(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	text, err := styled.TextFromAnnotations("click", []spans.Annotation{
		spans.Link("https://example.org/\x1b]0;pwned\x07", 0, 5),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	if err := Output(text, out, &Config{}, NewConsoleFixedWidthFormat(nil)); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	t.Logf("console output = %q", s)
	if strings.Contains(s, "\x07") || strings.Contains(s, "\x1b]0;") {
		t.Errorf("expected control characters to be stripped from link target, have %q", s)
	}
	if !strings.Contains(s, "\x1b]8;;https://example.org/]0;pwned\x1b\\") {
		t.Errorf("expected sanitized OSC 8 hyperlink in %q", s)
	}
}

func TestNearestANSI(t *testing.T) {
	colors := map[spans.Color]color.Attribute{
		spans.Black:             color.FgBlack,
		spans.White:             color.FgHiWhite,
		spans.Red:               color.FgHiRed,
		spans.Color(0xff0000c0): color.FgBlue,
	}
	for c, expected := range colors {
		if a := nearestANSI(c); a != expected {
			t.Errorf("%v: expected attribute %d, have %d", c, expected, a)
		}
	}
}

func TestHTML(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	text, err := styled.TextFromAnnotations("a <b> & link", []spans.Annotation{
		spans.Bold(2, 5),
		spans.Italic(2, 5),
		spans.Foreground(spans.Red, 2, 5),
		spans.Link("https://example.org/?q=1&r=2", 8, 12),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	if err := NewHTML().Print(text, out, nil); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	t.Logf("html = %s", s)
	expected := []string{
		"<p>a ",
		`<span style="font-weight:bold;font-style:italic;color:#ff0000">&lt;b&gt;</span>`,
		" &amp; ",
		`<a href="https://example.org/?q=1&amp;r=2"><span style="text-decoration:underline;color:#f86689">link</span></a>`,
		"<br>\n</p>\n",
	}
	for _, e := range expected {
		if !strings.Contains(s, e) {
			t.Errorf("expected %q in HTML output", e)
		}
	}
}

func TestCSS(t *testing.T) {
	st := spans.Style{
		Flags:  spans.UnderlineFlag | spans.StrikethroughFlag,
		Size:   spans.FontSize{Value: 1.5, Unit: spans.EM},
		Family: "monospace",
	}.WithBg(0x80000000)
	css := CSS(st)
	if css != "text-decoration:underline line-through;background-color:rgba(0,0,0,0.502);font-size:1.5em;font-family:monospace" {
		t.Errorf("unexpected CSS %q", css)
	}
}

// --- Test Helpers ----------------------------------------------------------

// recorder is a Format which collects lines and styled (non-plain) items.
type recorder struct {
	lines  []string
	styled []string
	line   strings.Builder
}

func (r *recorder) Preamble(io.Writer)  {}
func (r *recorder) Postamble(io.Writer) {}

func (r *recorder) StyledText(s string, style spans.Style, link string, w io.Writer) {
	r.line.WriteString(s)
	if !style.IsPlain() {
		r.styled = append(r.styled, s)
	}
}

func (r *recorder) Newline(io.Writer) {
	r.lines = append(r.lines, r.line.String())
	r.line.Reset()
}

var _ Format = &recorder{}
