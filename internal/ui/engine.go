package ui

import (
	_ "embed"
	"image/color"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed default.css
var defaultCSS string

// Engine holds the current stylesheet and draws nodes with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached per class/id pair and dropped when the stylesheet changes.
// If a font is loaded (LoadFont), text is drawn with it; otherwise raylib's default font is used.
type Engine struct {
	sheet  *Stylesheet
	styles map[string]ComputedStyle
	font   rl.Font
}

// New creates an engine with the built-in stylesheet.
func New() *Engine {
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		panic(err)
	}
	return &Engine{sheet: sheet, styles: make(map[string]ComputedStyle)}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.styles = make(map[string]ComputedStyle)
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// fontBaseSize is the glyph size fonts are rasterised at; DrawTextEx scales from it.
const fontBaseSize = 32

// LoadFont loads a TTF/OTF font from path with the given codepoints (nil means ASCII).
// If loading fails, the engine keeps its current font. Call after the window exists.
func (e *Engine) LoadFont(path string, codepoints []rune) error {
	f := rl.LoadFontEx(path, fontBaseSize, codepoints)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// Font returns the loaded font; its texture ID is zero when none is loaded.
func (e *Engine) Font() rl.Font {
	return e.font
}

// Style returns the resolved style for n: rules matching its class, then its id (last wins).
func (e *Engine) Style(n *Node) ComputedStyle {
	key := n.Class + "#" + n.ID
	if s, ok := e.styles[key]; ok {
		return s
	}
	merged := make(map[string]string)
	if e.sheet != nil {
		for _, rule := range e.sheet.Rules {
			sel := rule.Selector
			if (sel[0] == '.' && sel[1:] == n.Class && n.Class != "") || (sel[0] == '#' && sel[1:] == n.ID && n.ID != "") {
				for k, v := range rule.Props {
					merged[k] = v
				}
			}
		}
	}
	s := ResolveProps(merged)
	e.styles[key] = s
	return s
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Draw draws nodes in order: background, border, image slot, then text.
func (e *Engine) Draw(nodes []*Node) {
	for _, n := range nodes {
		style := e.Style(n)
		b := n.Bounds
		if style.Background.A > 0 {
			rl.DrawRectangleRec(b, rlColor(style.Background))
		}
		if style.HasBorder && b.Width > 0 && b.Height > 0 {
			rl.DrawRectangleLinesEx(b, float32(style.BorderWidth), rlColor(style.Border))
		}
		pad := float32(style.Padding)
		textX := b.X + pad
		if n.ImageSize > 0 {
			slot := rl.NewRectangle(b.X+pad, b.Y+(b.Height-n.ImageSize)/2, n.ImageSize, n.ImageSize)
			if n.Image.ID != 0 {
				src := rl.NewRectangle(0, 0, float32(n.Image.Width), float32(n.Image.Height))
				rl.DrawTexturePro(n.Image, src, slot, rl.NewVector2(0, 0), 0, rl.White)
			} else if n.Fill.A > 0 {
				rl.DrawRectangleRec(slot, rlColor(n.Fill))
			}
			textX = slot.X + slot.Width + 2*pad
		}
		if n.Text == "" {
			continue
		}
		size := float32(style.FontSize)
		textY := b.Y + pad
		if n.Type == "row" {
			textY = b.Y + (b.Height-size)/2
		}
		if e.font.Texture.ID != 0 {
			rl.DrawTextEx(e.font, n.Text, rl.NewVector2(textX, textY), size, 1, rlColor(style.Color))
		} else {
			rl.DrawText(n.Text, int32(textX), int32(textY), style.FontSize, rlColor(style.Color))
		}
	}
}

// Unload releases the loaded font, if any.
func (e *Engine) Unload() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}
