package spans

// LinkPolicy decides whether a color annotation may shadow the color forced
// by a hyperlink.
type LinkPolicy uint8

// Link color policies
const (
	// LaterColorWins lets a foreground color applied after a hyperlink replace
	// the link color.
	LaterColorWins LinkPolicy = iota
	// LinkColorWins keeps links in the link color, whatever colors are applied
	// on top of them.
	LinkColorWins
)

func (p LinkPolicy) String() string {
	if p == LinkColorWins {
		return "link-color-wins"
	}
	return "later-color-wins"
}

// MarshalText implements encoding.TextMarshaler.
func (p LinkPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *LinkPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "later-color-wins", "":
		*p = LaterColorWins
	case "link-color-wins":
		*p = LinkColorWins
	default:
		return ErrIllegalArguments
	}
	return nil
}

// Config represents a set of configuration parameters for flattening.
type Config struct {
	LinkColor       Color      `toml:"link-color"`     // color forced onto hyperlinks
	LinkUnderline   bool       `toml:"link-underline"` // underline hyperlinks
	LinkColorPolicy LinkPolicy `toml:"link-policy"`
	Coalesce        bool       `toml:"coalesce"` // merge adjacent runs of equal style and link
}

// DefaultConfig returns the configuration used by Flatten.
func DefaultConfig() *Config {
	return &Config{
		LinkColor:       LinkColor,
		LinkUnderline:   true,
		LinkColorPolicy: LaterColorWins,
		Coalesce:        true,
	}
}
