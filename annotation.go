package spans

import (
	"fmt"
	"strings"
)

// Kind tags the payload of an annotation.
type Kind uint8

// Annotation kinds. Values not listed here are unknown kinds: they are
// accepted by the flattener but have no visual effect.
const (
	UnknownKind Kind = iota
	BoldKind
	ItalicKind
	BoldItalicKind
	UnderlineKind
	StrikethroughKind
	ForegroundColorKind
	BackgroundColorKind
	HyperlinkKind
	AbsoluteFontSizeKind
	RelativeFontSizeKind
	FontFamilyKind
	kindCount
)

var kindNames = [...]string{
	UnknownKind:          "unknown",
	BoldKind:             "bold",
	ItalicKind:           "italic",
	BoldItalicKind:       "bold-italic",
	UnderlineKind:        "underline",
	StrikethroughKind:    "strikethrough",
	ForegroundColorKind:  "color",
	BackgroundColorKind:  "background",
	HyperlinkKind:        "link",
	AbsoluteFontSizeKind: "size",
	RelativeFontSizeKind: "relative-size",
	FontFamilyKind:       "family",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Known is true for all kinds this package knows how to apply.
func (k Kind) Known() bool {
	return k > UnknownKind && k < kindCount
}

// ParseKind returns the kind for a name as returned by Kind.String.
// Some common aliases from HTML and Markdown are accepted as well.
// Unrecognized names yield UnknownKind.
func ParseKind(name string) Kind {
	n := strings.ToLower(strings.TrimSpace(name))
	for k := BoldKind; k < kindCount; k++ {
		if kindNames[k] == n {
			return k
		}
	}
	switch n {
	case "b", "strong":
		return BoldKind
	case "i", "em", "emphasis":
		return ItalicKind
	case "u":
		return UnderlineKind
	case "s", "del", "strike":
		return StrikethroughKind
	case "fg", "foreground":
		return ForegroundColorKind
	case "bg":
		return BackgroundColorKind
	case "a", "url", "hyperlink":
		return HyperlinkKind
	case "em-size":
		return RelativeFontSizeKind
	case "font", "typeface":
		return FontFamilyKind
	}
	return UnknownKind
}

// Annotation is a style directive over the half-open byte range [Start, End)
// of a text. Which of the payload fields is significant depends on Kind.
type Annotation struct {
	Start, End uint64
	Kind       Kind
	Color      Color   // ForegroundColorKind, BackgroundColorKind
	Size       float32 // sp for AbsoluteFontSizeKind, multiplier for RelativeFontSizeKind
	Family     string  // FontFamilyKind
	Target     string  // HyperlinkKind
}

// Len returns the number of bytes covered by the annotation.
func (a Annotation) Len() uint64 {
	if a.End <= a.Start {
		return 0
	}
	return a.End - a.Start
}

// Void is true for zero-length annotations.
func (a Annotation) Void() bool {
	return a.End <= a.Start
}

// covers is true if [from, to) lies within the annotation's range.
func (a Annotation) covers(from, to uint64) bool {
	return a.Start <= from && a.End >= to
}

func (a Annotation) String() string {
	var payload string
	switch a.Kind {
	case ForegroundColorKind, BackgroundColorKind:
		payload = "(" + a.Color.String() + ")"
	case HyperlinkKind:
		payload = fmt.Sprintf("(%q)", a.Target)
	case AbsoluteFontSizeKind:
		payload = fmt.Sprintf("(%gsp)", a.Size)
	case RelativeFontSizeKind:
		payload = fmt.Sprintf("(%gem)", a.Size)
	case FontFamilyKind:
		payload = fmt.Sprintf("(%q)", a.Family)
	}
	return fmt.Sprintf("[%d…%d) %s%s", a.Start, a.End, a.Kind, payload)
}

// --- Constructors ----------------------------------------------------------

// Bold creates a bold annotation for [from, to).
func Bold(from, to uint64) Annotation {
	return Annotation{Start: from, End: to, Kind: BoldKind}
}

// Italic creates an italic annotation for [from, to).
func Italic(from, to uint64) Annotation {
	return Annotation{Start: from, End: to, Kind: ItalicKind}
}

// BoldItalic creates a bold and italic annotation for [from, to).
func BoldItalic(from, to uint64) Annotation {
	return Annotation{Start: from, End: to, Kind: BoldItalicKind}
}

// Underline creates an underline annotation for [from, to).
func Underline(from, to uint64) Annotation {
	return Annotation{Start: from, End: to, Kind: UnderlineKind}
}

// Strikethrough creates a strikethrough annotation for [from, to).
func Strikethrough(from, to uint64) Annotation {
	return Annotation{Start: from, End: to, Kind: StrikethroughKind}
}

// Foreground creates a text color annotation for [from, to).
func Foreground(c Color, from, to uint64) Annotation {
	return Annotation{Start: from, End: to, Kind: ForegroundColorKind, Color: c}
}

// Background creates a background color annotation for [from, to).
func Background(c Color, from, to uint64) Annotation {
	return Annotation{Start: from, End: to, Kind: BackgroundColorKind, Color: c}
}

// Link creates a hyperlink annotation for [from, to).
func Link(target string, from, to uint64) Annotation {
	return Annotation{Start: from, End: to, Kind: HyperlinkKind, Target: target}
}

// AbsoluteSize creates a font size annotation for [from, to), size given in sp.
func AbsoluteSize(sp float32, from, to uint64) Annotation {
	return Annotation{Start: from, End: to, Kind: AbsoluteFontSizeKind, Size: sp}
}

// RelativeSize creates a font size annotation for [from, to), multiplying
// the size in effect.
func RelativeSize(factor float32, from, to uint64) Annotation {
	return Annotation{Start: from, End: to, Kind: RelativeFontSizeKind, Size: factor}
}

// Family creates a font family annotation for [from, to).
func Family(name string, from, to uint64) Annotation {
	return Annotation{Start: from, End: to, Kind: FontFamilyKind, Family: name}
}
