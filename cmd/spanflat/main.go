/*
Spanflat flattens an annotated text and prints the resulting style runs.

Usage:

	spanflat [flags] [document]

The document holds a text and its annotations, in YAML or JSON:

	text: "hello world"
	annotations:
	  - {start: 0, end: 5, kind: bold}
	  - {start: 6, end: 11, kind: link, target: "https://example.org"}

If no document is given, it is read from stdin. The flags are:

	-config file   flattener configuration (TOML)
	-format f      output format: table (default), console or html
	-width n       line width for console and html output (0: no wrapping)
	-utf16         annotation offsets count UTF-16 code units
	-trace level   trace level: error, info or debug
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/spans"
	"github.com/npillmayer/spans/styled"
	"github.com/npillmayer/spans/styled/formatter"
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func main() {
	configFile := flag.String("config", "", "flattener configuration file (TOML)")
	format := flag.String("format", "table", "output format: table, console or html")
	width := flag.Int("width", -1, "line width for console and html output")
	utf16 := flag.Bool("utf16", false, "annotation offsets count UTF-16 code units")
	level := flag.String("trace", "error", "trace level: error, info or debug")
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(*level))
	//
	if err := run(*configFile, *format, *width, *utf16, flag.Args(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "spanflat: %v\n", err)
		os.Exit(1)
	}
}

func traceLevel(s string) tracing.TraceLevel {
	switch s {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

func run(configFile, format string, width int, utf16 bool, args []string, stdin io.Reader, out io.Writer) error {
	config := spans.DefaultConfig()
	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			return err
		}
		config, err = readConfig(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	in := stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	doc, err := readDocument(in)
	if err != nil {
		return err
	}
	annotations, err := doc.annotations(utf16)
	if err != nil {
		return err
	}
	text, err := styled.TextFromAnnotations(doc.Text, annotations, config)
	if err != nil {
		return err
	}
	tracer().Infof("flattened %d annotations into %d runs", len(annotations), len(text.Runs()))
	switch format {
	case "table":
		return printTable(text, out)
	case "console":
		fmtConfig := formatter.ConfigFromTerminal()
		if width >= 0 {
			fmtConfig.LineWidth = width
		}
		return formatter.Output(text, out, fmtConfig, formatter.NewConsoleFixedWidthFormat(nil))
	case "html":
		return formatter.NewHTML().Print(text, out, &formatter.Config{LineWidth: max(width, 0)})
	}
	return fmt.Errorf("unknown output format %q", format)
}

func printTable(text *styled.Text, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tLEN\tSTYLE\tLINK\tTEXT")
	for _, r := range text.Runs() {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%q\n", r.Pos, r.Len(), r.Style, r.Link, r.Text)
	}
	return tw.Flush()
}
