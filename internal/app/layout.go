package app

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tile-configurator/internal/finish"
	"tile-configurator/internal/i18n"
	"tile-configurator/internal/panel"
	"tile-configurator/internal/ui"
)

const headerHeight = 64

// screenLayout splits the window: a header across the top, the selection panel in
// the left quarter below it and the 3D viewport in the remaining three quarters.
type screenLayout struct {
	header   panel.Rect
	sidebar  panel.Rect
	viewport panel.Rect
}

func computeLayout(w, h float32) screenLayout {
	side := w / 4
	body := h - headerHeight
	if body < 0 {
		body = 0
	}
	return screenLayout{
		header:   panel.Rect{W: w, H: headerHeight},
		sidebar:  panel.Rect{Y: headerHeight, W: side, H: body},
		viewport: panel.Rect{X: side, Y: headerHeight, W: w - side, H: body},
	}
}

func (s screenLayout) panelLayout() panel.Layout {
	l := panel.DefaultLayout(s.sidebar.W, s.sidebar.H)
	l.Bounds = s.sidebar
	return l
}

func toRect(r panel.Rect) rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.W, r.H)
}

func rgba(c finish.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// chrome keeps the header and panel nodes between frames; only bounds, text and
// classes change.
type chrome struct {
	header  *ui.Node
	sidebar *ui.Node
	heading *ui.Node
	rows    []*ui.Node
	out     []*ui.Node
}

func newChrome(rows int) *chrome {
	c := &chrome{
		header:  ui.NewNode("label", "header", "header", ""),
		sidebar: ui.NewNode("panel", "panel", "sidebar", ""),
		heading: ui.NewNode("label", "heading", "heading", ""),
	}
	for i := 0; i < rows; i++ {
		c.rows = append(c.rows, ui.NewNode("row", "row", fmt.Sprintf("row-%d", i), ""))
	}
	return c
}

// nodes returns the header, panel background, heading and one node per row, in draw order.
// Rows show their thumbnail once uploaded and the finish's base color until then.
func (c *chrome) nodes(s screenLayout, tr *i18n.Translator, rows []panel.Row, thumb func(string) (rl.Texture2D, bool)) []*ui.Node {
	c.header.Bounds = toRect(s.header)
	c.header.Text = tr.Title()
	c.sidebar.Bounds = toRect(s.sidebar)

	l := s.panelLayout()
	c.heading.Bounds = rl.NewRectangle(l.Bounds.X+l.Padding, l.Bounds.Y+l.Padding, l.Bounds.W-2*l.Padding, l.HeadingHeight)
	c.heading.Text = tr.Heading()

	c.out = append(c.out[:0], c.header, c.sidebar, c.heading)
	for i, row := range rows {
		if i >= len(c.rows) {
			break
		}
		n := c.rows[i]
		n.Class = "row"
		if row.Selected {
			n.Class = "row-selected"
		}
		n.Bounds = toRect(row.Bounds)
		n.Text = row.Option.Name
		n.ImageSize = l.Thumb
		n.Fill = rgba(row.Option.BaseColor)
		n.Image = rl.Texture2D{}
		if tex, ok := thumb(row.Option.Texture); ok {
			n.Image = tex
		}
		c.out = append(c.out, n)
	}
	return c.out
}
