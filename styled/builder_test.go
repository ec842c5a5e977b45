package styled

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spans"
)

func TestBuilderNested(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	b := NewTextBuilder(nil)
	b.Append("My ")
	b.Push(spans.Bold(0, 0))
	b.Append("first ")
	b.Push(spans.Foreground(spans.Blue, 0, 0))
	b.Append("styled")
	a, err := b.Pop()
	if err != nil {
		t.Fatal(err)
	}
	if a.Start != 9 || a.End != 15 {
		t.Errorf("expected color annotation over [9…15), have %v", a)
	}
	b.Pop()
	b.Append(" paragraph.")
	text, err := b.Text()
	if err != nil {
		t.Fatal(err)
	}
	runs := text.Runs()
	t.Logf("runs = %v", runs)
	if len(runs) != 4 {
		t.Fatalf("expected 4 runs, have %v", runs)
	}
	if runs[2].Text != "styled" || !runs[2].Style.Bold() || runs[2].Style.Fg != spans.Blue {
		t.Errorf("unexpected run %v", runs[2])
	}
	if err := b.Append("more"); err == nil {
		t.Errorf("expected builder to refuse fragments after Text()")
	}
}

func TestBuilderClosesOpenStyles(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := NewTextBuilder(nil)
	b.AppendStyled("link", spans.Link("https://example.org", 0, 0))
	b.Push(spans.Italic(0, 0))
	b.Append(" tail")
	if b.Depth() != 1 {
		t.Errorf("expected 1 open style, have %d", b.Depth())
	}
	if as := b.Annotations(); as[1].End != 9 {
		t.Errorf("expected open style to end at 9 in snapshot, have %v", as[1])
	}
	text, err := b.Text()
	if err != nil {
		t.Fatal(err)
	}
	links := text.Links()
	if len(links) != 1 || links[0].To != 4 {
		t.Errorf("unexpected links %v", links)
	}
	if st, _, _ := text.StyleAt(6); !st.Italic() {
		t.Errorf("expected open italic style to be closed at end of text")
	}
	if _, err := NewTextBuilder(nil).Pop(); err == nil {
		t.Errorf("expected pop on empty stack to fail")
	}
}
