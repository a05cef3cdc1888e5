package ui

import (
	"image/color"
	"strconv"
	"strings"

	"tile-configurator/internal/finish"
)

// Rule is a single CSS rule: one selector and its raw property values.
type Rule struct {
	Selector string            // e.g. ".row" or "#heading"
	Props    map[string]string // e.g. "background" -> "#ffffff"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle holds resolved values used for drawing.
// Padding is the inset (in pixels) of a node's content from its bounds.
type ComputedStyle struct {
	Background  color.RGBA
	Color       color.RGBA
	Border      color.RGBA
	HasBorder   bool
	BorderWidth int32
	Padding     int32
	FontSize    int32
}

// DefaultComputedStyle returns a minimal style (transparent background, black text, no border).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background:  color.RGBA{},
		Color:       color.RGBA{A: 255},
		Border:      color.RGBA{A: 255},
		BorderWidth: 1,
		Padding:     4,
		FontSize:    20,
	}
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA. Returns false on parse error.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, ok := finish.ParseHex(s)
	if !ok {
		return color.RGBA{}, false
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, true
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from a merged property map (e.g. from matching rules).
// Invalid values are ignored.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "border-width":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.BorderWidth = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}
