package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Details is the card under the finish list describing the applied finish.
// It owns its nodes and refreshes their text on every AppendNodes call.
type Details struct {
	status  *Node
	color   *Node
	texture *Node
}

// NewDetails creates the card with nodes styled by .details.
func NewDetails() *Details {
	return &Details{
		status:  NewNode("label", "details", "details-status", ""),
		color:   NewNode("label", "details", "details-color", ""),
		texture: NewNode("label", "details", "details-texture", ""),
	}
}

// FinishInfo is what the card shows. ui does not depend on the finish catalog.
type FinishInfo struct {
	Status  string // localised "selected" line
	Hex     string
	Swatch  color.RGBA
	Texture string // localised texture status line
}

const detailsLine = 26

// AppendNodes lays the card out from the top-left corner (x, y) with the given width
// and appends its nodes to dst.
func (d *Details) AppendNodes(dst []*Node, x, y, width float32, info FinishInfo) []*Node {
	d.status.Text = info.Status
	d.color.Text = info.Hex
	d.color.ImageSize = 16
	d.color.Fill = info.Swatch
	d.texture.Text = info.Texture
	for i, n := range []*Node{d.status, d.color, d.texture} {
		n.Bounds = rl.NewRectangle(x, y+float32(i)*detailsLine, width, detailsLine)
	}
	return append(dst, d.status, d.color, d.texture)
}
