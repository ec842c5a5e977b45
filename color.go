package spans

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 32-bit ARGB color value, laid out as 0xAARRGGBB.
type Color uint32

// Some standard colors
const (
	Black     Color = 0xff000000
	White     Color = 0xffffffff
	Red       Color = 0xffff0000
	Green     Color = 0xff00ff00
	Blue      Color = 0xff0000ff
	Yellow    Color = 0xffffff00
	Magenta   Color = 0xffff00ff
	Cyan      Color = 0xff00ffff
	LinkColor Color = 0xfff86689 // default color for hyperlinks
)

// ARGB returns the channels of c, each in [0…255].
func (c Color) ARGB() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements image/color.Color. Channels are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	ca, cr, cg, cb := c.ARGB()
	a = uint32(ca) | uint32(ca)<<8
	r = (uint32(cr) | uint32(cr)<<8) * a / 0xffff
	g = (uint32(cg) | uint32(cg)<<8) * a / 0xffff
	b = (uint32(cb) | uint32(cb)<<8) * a / 0xffff
	return
}

// Hex returns the color as "#rrggbb", dropping the alpha channel.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

func (c Color) String() string {
	if c>>24 == 0xff {
		return c.Hex()
	}
	return fmt.Sprintf("#%08x", uint32(c))
}

// ParseColor parses a color in one of the notations
//
//	#rgb  #rrggbb  #aarrggbb
//
// Colors without an alpha channel are opaque. The leading '#' is optional.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
		fallthrough
	case 6:
		h = "ff" + h
	case 8:
	default:
		return 0, fmt.Errorf("%w: color %q", ErrIllegalArguments, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: color %q", ErrIllegalArguments, s)
	}
	return Color(v), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the notations
// of ParseColor.
func (c *Color) UnmarshalText(text []byte) error {
	col, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = col
	return nil
}
