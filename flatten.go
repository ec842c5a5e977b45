package spans

import (
	"math"
	"slices"
	"unicode/utf8"
)

// Flattener converts annotated text into runs of uniform style.
// A Flattener is immutable and safe for concurrent use.
type Flattener struct {
	config Config
}

// NewFlattener creates a flattener for a configuration. config may be nil,
// resulting in DefaultConfig being used. The configuration is copied.
func NewFlattener(config *Config) *Flattener {
	if config == nil {
		config = DefaultConfig()
	}
	return &Flattener{config: *config}
}

// Config returns a copy of the flattener's configuration.
func (f *Flattener) Config() Config {
	return f.config
}

var defaultFlattener = NewFlattener(nil)

// Flatten converts a text and its annotations into a sequence of runs, using
// the default configuration. See Flattener.Flatten.
func Flatten(text string, annotations []Annotation) ([]Run, error) {
	return defaultFlattener.Flatten(text, annotations)
}

// Flatten converts a text and its annotations into a sequence of runs.
//
// Annotations are applied in slice order: for conflicting attributes, an
// annotation wins over every annotation before it. Runs are returned
// left to right, cover text without gaps or overlaps, and concatenating their
// texts reproduces text.
//
// If any annotation's offsets are not valid byte positions of text, Flatten
// returns an *AnnotationError wrapping ErrMalformedAnnotation and no runs.
// An empty text results in an empty sequence of runs.
func (f *Flattener) Flatten(text string, annotations []Annotation) ([]Run, error) {
	if err := validate(text, annotations); err != nil {
		T().Errorf("spans: rejecting annotated text: %v", err)
		return nil, err
	}
	length := uint64(len(text))
	if length == 0 {
		return []Run{}, nil
	}
	events := collectEvents(annotations)
	T().Debugf("spans: flatten text of length %d, %d annotations, %d events",
		length, len(annotations), len(events))
	runs := make([]Run, 0, len(events)+1)
	var active activeSet
	pos, i := uint64(0), 0
	for pos < length {
		for i < len(events) && events[i].pos == pos {
			if events[i].start {
				active.insert(events[i].inx)
			} else {
				active.remove(events[i].inx)
			}
			i++
		}
		next := length
		if i < len(events) {
			next = events[i].pos
		}
		fs := f.fold(annotations, active)
		runs = append(runs, Run{
			Text:  text[pos:next],
			Style: fs.style,
			Link:  fs.link,
			Pos:   pos,
		})
		pos = next
	}
	if f.config.Coalesce {
		runs = Coalesce(runs)
	}
	return runs, nil
}

// validate checks all offsets and font sizes before any work is done. Input
// is rejected as a whole.
func validate(text string, annotations []Annotation) error {
	length := uint64(len(text))
	for i, a := range annotations {
		var reason string
		switch {
		case a.Start > a.End:
			reason = "start after end"
		case a.End > length:
			reason = "end beyond text"
		case !charBoundary(text, a.Start) || !charBoundary(text, a.End):
			reason = "offset splits a UTF-8 sequence"
		case (a.Kind == AbsoluteFontSizeKind || a.Kind == RelativeFontSizeKind) && !finite(a.Size):
			reason = "font size is not a finite number"
		default:
			continue
		}
		return &AnnotationError{Index: i, Annotation: a, Length: length, Reason: reason}
	}
	return nil
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func charBoundary(text string, pos uint64) bool {
	return pos == uint64(len(text)) || utf8.RuneStart(text[pos])
}

// --- Boundary events -------------------------------------------------------

type event struct {
	pos   uint64
	inx   int  // index of the annotation in the input
	start bool // start or end event
}

// collectEvents creates start and end events for all annotations which may
// have a visible effect, sorted by position. Zero-length annotations and
// unknown kinds do not introduce boundaries.
func collectEvents(annotations []Annotation) []event {
	events := make([]event, 0, 2*len(annotations))
	for i, a := range annotations {
		if a.Void() || !a.Kind.Known() {
			continue
		}
		events = append(events,
			event{pos: a.Start, inx: i, start: true},
			event{pos: a.End, inx: i, start: false})
	}
	slices.SortStableFunc(events, func(x, y event) int {
		switch {
		case x.pos < y.pos:
			return -1
		case x.pos > y.pos:
			return 1
		}
		return 0
	})
	return events
}

// activeSet holds the indices of the annotations covering the current sweep
// position, ordered by index, i.e. in application order.
type activeSet []int

func (as *activeSet) insert(inx int) {
	if i, found := slices.BinarySearch(*as, inx); !found {
		*as = slices.Insert(*as, i, inx)
	}
}

func (as *activeSet) remove(inx int) {
	if i, found := slices.BinarySearch(*as, inx); found {
		*as = slices.Delete(*as, i, i+1)
	}
}

// --- Folding styles --------------------------------------------------------

type folded struct {
	style  Style
	link   string
	linked bool
}

func (f *Flattener) fold(annotations []Annotation, active activeSet) folded {
	var fs folded
	for _, inx := range active {
		f.apply(&fs, annotations[inx])
	}
	return fs
}

// apply merges a single annotation into a folded style.
func (f *Flattener) apply(fs *folded, a Annotation) {
	switch a.Kind {
	case BoldKind:
		fs.style.Flags |= BoldFlag
	case ItalicKind:
		fs.style.Flags |= ItalicFlag
	case BoldItalicKind:
		fs.style.Flags |= BoldFlag | ItalicFlag
	case UnderlineKind:
		fs.style.Flags |= UnderlineFlag
	case StrikethroughKind:
		fs.style.Flags |= StrikethroughFlag
	case ForegroundColorKind:
		if fs.linked && f.config.LinkColorPolicy == LinkColorWins {
			return
		}
		fs.style = fs.style.WithFg(a.Color)
	case BackgroundColorKind:
		fs.style = fs.style.WithBg(a.Color)
	case HyperlinkKind:
		fs.link, fs.linked = a.Target, true
		fs.style = fs.style.WithFg(f.config.LinkColor)
		if f.config.LinkUnderline {
			fs.style.Flags |= UnderlineFlag
		}
	case AbsoluteFontSizeKind:
		fs.style.Size = FontSize{Value: a.Size, Unit: SP}
	case RelativeFontSizeKind:
		fs.style.Size = fs.style.Size.Scale(a.Size)
	case FontFamilyKind:
		fs.style.Family = a.Family
	}
}
