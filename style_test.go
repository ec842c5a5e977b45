package spans

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	inputs := map[string]Color{
		"#f00":      Red,
		"#00ff00":   Green,
		"0000ff":    Blue,
		"#80ff0000": 0x80ff0000,
		"#f86689":   LinkColor,
	}
	for s, expected := range inputs {
		c, err := ParseColor(s)
		if err != nil {
			t.Errorf("cannot parse %q: %v", s, err)
			continue
		}
		if c != expected {
			t.Errorf("%q: expected %v, have %v", s, expected, c)
		}
	}
	for _, s := range []string{"", "#12", "#gggggg", "red"} {
		if _, err := ParseColor(s); err == nil {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	var c color.Color = Color(0xff102030)
	r, g, b, a := c.RGBA()
	if r != 0x1010 || g != 0x2020 || b != 0x3030 || a != 0xffff {
		t.Errorf("unexpected RGBA %x %x %x %x", r, g, b, a)
	}
	if Color(0xff102030).String() != "#102030" {
		t.Errorf("unexpected string %s", Color(0xff102030))
	}
}

func TestFlagsString(t *testing.T) {
	f := ItalicFlag
	t.Logf("italics=%v", f)
	f = f.Add(UnderlineFlag)
	if f.String() != "iu" {
		t.Errorf("expected 'iu', have %q", f)
	}
	if f.Minus(ItalicFlag) != UnderlineFlag {
		t.Errorf("expected underline only, have %v", f.Minus(ItalicFlag))
	}
}

func TestStyleString(t *testing.T) {
	st := Style{Flags: BoldFlag, Size: FontSize{1.5, EM}}.WithFg(Red)
	if st.String() != "b,fg=#ff0000,size=1.5em" {
		t.Errorf("unexpected style string %q", st)
	}
	if !PlainStyle.IsPlain() || st.IsPlain() {
		t.Errorf("IsPlain reports wrong results")
	}
	if !st.Equals(Style{Flags: BoldFlag, Size: FontSize{1.5, EM}, Fg: Red, HasFg: true}) {
		t.Errorf("expected equal styles")
	}
}

func TestParseKind(t *testing.T) {
	for k := BoldKind; k < kindCount; k++ {
		if ParseKind(k.String()) != k {
			t.Errorf("kind %v does not survive String/ParseKind", k)
		}
	}
	if ParseKind("strong") != BoldKind || ParseKind("a") != HyperlinkKind {
		t.Errorf("aliases not recognized")
	}
	if ParseKind("blink") != UnknownKind {
		t.Errorf("expected unknown kind for 'blink'")
	}
}
