package spans

import (
	"fmt"
	"strings"
)

// Flags is a set of boolean text attributes.
type Flags uint8

// Text attributes which combine by OR.
const (
	PlainFlags Flags = 0
	BoldFlag   Flags = 1 << (iota - 1)
	ItalicFlag
	UnderlineFlag
	StrikethroughFlag
)

var flagNames = [...]string{"b", "i", "u", "s"}

// Add combines flags with other flags.
func (f Flags) Add(other Flags) Flags {
	return f | other
}

// Minus removes flags.
func (f Flags) Minus(other Flags) Flags {
	return f & ^other
}

// Has is true if all of the flags in other are set.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

func (f Flags) String() string {
	if f == PlainFlags {
		return "plain"
	}
	str := ""
	for i := range flagNames {
		if f&(1<<i) > 0 {
			str = str + flagNames[i]
		}
	}
	return str
}

// SizeUnit tells how to interpret the value of a FontSize.
type SizeUnit uint8

// Font size units
const (
	Unspecified SizeUnit = iota // inherit the size from the rendering surface
	SP                          // absolute, scale-independent pixels
	EM                          // relative to the inherited size
)

// FontSize is either absolute (SP) or a multiple of the inherited size (EM).
type FontSize struct {
	Value float32
	Unit  SizeUnit
}

// Scale multiplies a font size. An unspecified size becomes relative.
func (fs FontSize) Scale(factor float32) FontSize {
	if fs.Unit == Unspecified {
		return FontSize{Value: factor, Unit: EM}
	}
	return FontSize{Value: fs.Value * factor, Unit: fs.Unit}
}

func (fs FontSize) String() string {
	switch fs.Unit {
	case SP:
		return fmt.Sprintf("%gsp", fs.Value)
	case EM:
		return fmt.Sprintf("%gem", fs.Value)
	}
	return "inherit"
}

// Style is the effective style of a run of text, resulting from folding all
// annotations active over the run.
//
// Style values are comparable; two runs look the same iff their styles are ==.
type Style struct {
	Flags  Flags
	Fg     Color // valid if HasFg
	Bg     Color // valid if HasBg
	HasFg  bool
	HasBg  bool
	Size   FontSize
	Family string
}

// PlainStyle is the default style, i.e. the style of text without any annotations.
var PlainStyle = Style{}

// IsPlain is true if s does not alter the rendering surface's defaults.
func (s Style) IsPlain() bool {
	return s == PlainStyle
}

// Equals is true if s looks the same as other.
func (s Style) Equals(other Style) bool {
	return s == other
}

// Bold is a shortcut for s.Flags.Has(BoldFlag)
func (s Style) Bold() bool { return s.Flags.Has(BoldFlag) }

// Italic is a shortcut for s.Flags.Has(ItalicFlag)
func (s Style) Italic() bool { return s.Flags.Has(ItalicFlag) }

// Underline is a shortcut for s.Flags.Has(UnderlineFlag)
func (s Style) Underline() bool { return s.Flags.Has(UnderlineFlag) }

// Strikethrough is a shortcut for s.Flags.Has(StrikethroughFlag)
func (s Style) Strikethrough() bool { return s.Flags.Has(StrikethroughFlag) }

// WithFg returns a copy of s with foreground color c.
func (s Style) WithFg(c Color) Style {
	s.Fg, s.HasFg = c, true
	return s
}

// WithBg returns a copy of s with background color c.
func (s Style) WithBg(c Color) Style {
	s.Bg, s.HasBg = c, true
	return s
}

// String returns an informational string for a style. Clients must not rely
// on its format.
func (s Style) String() string {
	if s.IsPlain() {
		return "plain"
	}
	var parts []string
	if s.Flags != PlainFlags {
		parts = append(parts, s.Flags.String())
	}
	if s.HasFg {
		parts = append(parts, "fg="+s.Fg.String())
	}
	if s.HasBg {
		parts = append(parts, "bg="+s.Bg.String())
	}
	if s.Size.Unit != Unspecified {
		parts = append(parts, "size="+s.Size.String())
	}
	if s.Family != "" {
		parts = append(parts, "family="+s.Family)
	}
	return strings.Join(parts, ",")
}
