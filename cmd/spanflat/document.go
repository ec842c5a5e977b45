package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/spans"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// document is the input format of spanflat: a text together with its
// annotations. As JSON is a subset of YAML, documents may be given in either
// notation.
type document struct {
	Text        string       `yaml:"text"`
	UTF16       bool         `yaml:"utf16"` // offsets count UTF-16 code units
	Annotations []annotation `yaml:"annotations"`
}

type annotation struct {
	Start  uint64  `yaml:"start"`
	End    uint64  `yaml:"end"`
	Kind   string  `yaml:"kind"`
	Color  string  `yaml:"color"`
	Size   float32 `yaml:"size"`
	Family string  `yaml:"family"`
	Target string  `yaml:"target"`
}

func readDocument(r io.Reader) (*document, error) {
	doc := &document{}
	if err := yaml.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("cannot decode document: %w", err)
	}
	return doc, nil
}

// annotations converts the document's annotations, translating offsets
// to byte offsets if necessary. Unknown kinds are passed on and will be
// ignored by the flattener.
func (doc *document) annotations(forceUTF16 bool) ([]spans.Annotation, error) {
	as := make([]spans.Annotation, len(doc.Annotations))
	for i, a := range doc.Annotations {
		as[i] = spans.Annotation{
			Start:  a.Start,
			End:    a.End,
			Kind:   spans.ParseKind(a.Kind),
			Size:   a.Size,
			Family: a.Family,
			Target: a.Target,
		}
		if !as[i].Kind.Known() {
			tracer().Infof("annotation #%d: unknown kind %q", i, a.Kind)
		}
		if a.Color != "" {
			c, err := spans.ParseColor(a.Color)
			if err != nil {
				return nil, fmt.Errorf("annotation #%d: %w", i, err)
			}
			as[i].Color = c
		}
	}
	if doc.UTF16 || forceUTF16 {
		return spans.FromUTF16(doc.Text, as)
	}
	return as, nil
}

// readConfig reads a flattener configuration in TOML format. Keys not present
// keep their default values.
//
//	link-color = "#0000ee"
//	link-underline = true
//	link-policy = "link-color-wins"
//	coalesce = true
func readConfig(r io.Reader) (*spans.Config, error) {
	config := spans.DefaultConfig()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(config); err != nil {
		return nil, fmt.Errorf("cannot decode configuration: %w", err)
	}
	return config, nil
}
