package finish

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an opaque 8-bit RGB color. The scene and the panel convert it to
// renderer colors at draw time so this package stays free of raylib.
type Color struct {
	R, G, B uint8
}

// RGB returns a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// White is the neutral tint (texture drawn unmodified).
var White = Color{R: 255, G: 255, B: 255}

// ParseHex parses #RGB or #RRGGBB (case-insensitive). Returns false on parse error.
func ParseHex(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return Color{}, false
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		r, ok1 := hexByte(hex[0])
		g, ok2 := hexByte(hex[1])
		b, ok3 := hexByte(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return Color{R: r * 17, G: g * 17, B: b * 17}, true
	case 6:
		var out [3]uint8
		for i := range out {
			hi, ok1 := hexByte(hex[2*i])
			lo, ok2 := hexByte(hex[2*i+1])
			if !ok1 || !ok2 {
				return Color{}, false
			}
			out[i] = hi<<4 | lo
		}
		return Color{R: out[0], G: out[1], B: out[2]}, true
	}
	return Color{}, false
}

// MustParseHex is ParseHex for authored constants; it panics on a malformed literal.
func MustParseHex(s string) Color {
	c, ok := ParseHex(s)
	if !ok {
		panic("finish: invalid hex color " + s)
	}
	return c
}

func hexByte(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex formats the color as #RRGGBB (upper case, as the catalog writes it).
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// UnmarshalYAML reads a color written as a hex string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, ok := ParseHex(s)
	if !ok {
		return fmt.Errorf("line %d: invalid color %q", value.Line, s)
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the color back as #RRGGBB.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}
