package ui

import (
	"image/color"
	"testing"
)

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* comment */
.row { background: #fff; border: #d1d5db; padding: 8px; }
#heading { font-size: 22px; color: #111827 }
.a, .b { color: #ff0000; }
div { color: #00ff00; }
.x .y { color: #0000ff; }
@media screen { .z { color: #000; } }
`)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]map[string]string{}
	for _, r := range sheet.Rules {
		got[r.Selector] = r.Props
	}
	if p := got[".row"]; p["background"] != "#fff" || p["border"] != "#d1d5db" || p["padding"] != "8px" {
		t.Errorf(".row props = %v", p)
	}
	if p := got["#heading"]; p["font-size"] != "22px" || p["color"] != "#111827" {
		t.Errorf("#heading props = %v", p)
	}
	if got[".a"]["color"] != "#ff0000" || got[".b"]["color"] != "#ff0000" {
		t.Errorf("comma selectors: .a=%v .b=%v", got[".a"], got[".b"])
	}
	for _, sel := range []string{"div", ".x .y"} {
		if _, ok := got[sel]; ok {
			t.Errorf("unsupported selector %q was kept", sel)
		}
	}
}

func TestDefaultStylesheetParses(t *testing.T) {
	e := New()
	for _, class := range []string{"header", "panel", "heading", "row", "row-selected", "details"} {
		found := false
		for _, r := range e.Stylesheet().Rules {
			if r.Selector == "."+class {
				found = true
			}
		}
		if !found {
			t.Errorf("default stylesheet has no .%s rule", class)
		}
	}
	row := e.Style(NewNode("row", "row", "", ""))
	sel := e.Style(NewNode("row", "row-selected", "", ""))
	if row.Background == sel.Background || row.Border == sel.Border {
		t.Error("selected row is not visually distinct from a plain row")
	}
	if sel.BorderWidth != 2 {
		t.Errorf("selected border width = %d", sel.BorderWidth)
	}
}

func TestStyleIDOverridesClass(t *testing.T) {
	sheet, err := ParseCSS(`.label { color: #111111; font-size: 10; } #special { color: #222222; }`)
	if err != nil {
		t.Fatal(err)
	}
	e := New()
	e.SetStylesheet(sheet)
	s := e.Style(NewNode("label", "label", "special", ""))
	if s.Color != (color.RGBA{0x22, 0x22, 0x22, 255}) || s.FontSize != 10 {
		t.Errorf("style = %+v", s)
	}
	plain := e.Style(NewNode("label", "label", "", ""))
	if plain.Color != (color.RGBA{0x11, 0x11, 0x11, 255}) {
		t.Errorf("plain style = %+v", plain)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"#2563eb", color.RGBA{0x25, 0x63, 0xeb, 255}, true},
		{"#00000080", color.RGBA{0, 0, 0, 0x80}, true},
		{"#3B82F6ff", color.RGBA{0x3b, 0x82, 0xf6, 255}, true},
		{"#000000zz", color.RGBA{}, false},
		{"#zzzzzz80", color.RGBA{}, false},
		{"#12345", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
		{"#123456789", color.RGBA{}, false},
		{"red", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseHexColor(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolvePropsIgnoresInvalid(t *testing.T) {
	s := ResolveProps(map[string]string{"padding": "-3", "font-size": "big", "border": "nope", "border-width": "0"})
	if s != DefaultComputedStyle() {
		t.Errorf("invalid props changed style: %+v", s)
	}
}

func TestDetailsLayout(t *testing.T) {
	d := NewDetails()
	nodes := d.AppendNodes(nil, 10, 500, 200, FinishInfo{Status: "Tile: Modern Gray", Hex: "#808080", Swatch: color.RGBA{128, 128, 128, 255}, Texture: "Texture: loading"})
	if len(nodes) != 3 {
		t.Fatalf("len = %d", len(nodes))
	}
	if nodes[0].Text != "Tile: Modern Gray" || nodes[1].Text != "#808080" || nodes[2].Text != "Texture: loading" {
		t.Errorf("texts = %q %q %q", nodes[0].Text, nodes[1].Text, nodes[2].Text)
	}
	if nodes[1].Fill.R != 128 || nodes[1].ImageSize == 0 {
		t.Errorf("swatch = %+v", nodes[1])
	}
	if nodes[2].Bounds.Y <= nodes[1].Bounds.Y {
		t.Error("details lines overlap")
	}
}
