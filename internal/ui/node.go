package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label or row. It has optional class and id for CSS
// matching, bounds, optional text, and an optional square image slot at its left edge.
type Node struct {
	Type   string // "panel", "label", "row"
	Class  string // e.g. "row" for .row
	ID     string // e.g. "heading" for #heading
	Bounds rl.Rectangle
	Text   string
	// ImageSize > 0 reserves a square slot for Image; Fill is drawn there while Image is not loaded.
	ImageSize float32
	Image     rl.Texture2D
	Fill      color.RGBA
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}
