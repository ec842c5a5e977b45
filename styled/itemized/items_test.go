package itemized

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spans"
	"github.com/npillmayer/spans/styled"
)

func TestIterator(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	text, err := styled.TextFromAnnotations("Hello World, how are you?", []spans.Annotation{
		spans.Bold(6, 11),
		spans.Link("https://example.org", 13, 16),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	iter := IterateText(text)
	var contents []string
	links := 0
	for iter.Next() {
		content, style, from, to := iter.Style()
		t.Logf("%v: %d…%d = %q", style, from, to, content)
		contents = append(contents, content)
		if iter.Link() != "" {
			links++
		}
	}
	expected := []string{"Hello ", "World", ", ", "how", " are you?"}
	if len(contents) != len(expected) {
		t.Fatalf("expected %d style runs, have %d: %v", len(expected), len(contents), contents)
	}
	for i := range expected {
		if contents[i] != expected[i] {
			t.Errorf("run #%d: expected %q, have %q", i, expected[i], contents[i])
		}
	}
	if links != 1 {
		t.Errorf("expected 1 link run, have %d", links)
	}
	if iter.Next() {
		t.Errorf("expected iterator to be exhausted")
	}
}
