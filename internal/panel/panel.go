// Package panel is the finish selection list: a pure projection of the catalog
// and the current selection, plus hit-testing that reports clicks upward.
package panel

import (
	"tile-configurator/internal/finish"
)

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r. Right and bottom edges are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Row is one selectable entry.
type Row struct {
	Option   finish.Option
	Selected bool
	Bounds   Rect
}

// Layout places the panel and its rows on screen.
type Layout struct {
	Bounds        Rect    // whole panel
	Padding       float32 // inner margin
	HeadingHeight float32 // space reserved for the heading above the first row
	RowHeight     float32
	RowGap        float32
	Thumb         float32 // thumbnail edge length inside a row
}

// DefaultLayout returns the layout for a panel of the given size at the origin.
func DefaultLayout(width, height float32) Layout {
	return Layout{
		Bounds:        Rect{W: width, H: height},
		Padding:       16,
		HeadingHeight: 40,
		RowHeight:     64,
		RowGap:        16,
		Thumb:         48,
	}
}

// RowBounds returns the rectangle of the i-th row.
func (l Layout) RowBounds(i int) Rect {
	return Rect{
		X: l.Bounds.X + l.Padding,
		Y: l.Bounds.Y + l.Padding + l.HeadingHeight + float32(i)*(l.RowHeight+l.RowGap),
		W: l.Bounds.W - 2*l.Padding,
		H: l.RowHeight,
	}
}

// Rows projects the catalog into display rows. Exactly the row whose id matches
// selectedID is marked selected; an empty catalog yields no rows.
func Rows(c *finish.Catalog, selectedID int, l Layout) []Row {
	rows := make([]Row, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		o := c.At(i)
		rows = append(rows, Row{Option: o, Selected: o.ID == selectedID, Bounds: l.RowBounds(i)})
	}
	return rows
}

// Panel reports clicks on rows through OnSelect. It holds no selection state of its own.
type Panel struct {
	catalog  *finish.Catalog
	layout   Layout
	onSelect func(finish.Option)
}

// New returns a panel over c. onSelect is called with the clicked row's finish.
func New(c *finish.Catalog, l Layout, onSelect func(finish.Option)) *Panel {
	return &Panel{catalog: c, layout: l, onSelect: onSelect}
}

// Layout returns the current layout.
func (p *Panel) Layout() Layout {
	return p.layout
}

// SetLayout replaces the layout (e.g. after a window resize).
func (p *Panel) SetLayout(l Layout) {
	p.layout = l
}

// Rows returns the display rows for the given selection.
func (p *Panel) Rows(selectedID int) []Row {
	return Rows(p.catalog, selectedID, p.layout)
}

// Press handles one click at (x, y). If it lands on a row, OnSelect runs once,
// synchronously, and Press returns true.
func (p *Panel) Press(x, y float32) bool {
	if !p.layout.Bounds.Contains(x, y) {
		return false
	}
	for i := 0; i < p.catalog.Len(); i++ {
		if p.layout.RowBounds(i).Contains(x, y) {
			if p.onSelect != nil {
				p.onSelect(p.catalog.At(i))
			}
			return true
		}
	}
	return false
}
