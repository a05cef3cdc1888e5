// Package apartment owns the authored apartment layout and keeps its floor
// in step with the selected tile finish.
package apartment

import (
	"tile-configurator/internal/finish"
	"tile-configurator/internal/scene"
)

// Composer holds the composed apartment tree. Only the floor material changes after New.
type Composer struct {
	palette Palette
	root    *scene.Node
	floor   *scene.Node
	applied finish.Option
}

// New composes the apartment with the floor showing initial.
func New(p Palette, initial finish.Option) *Composer {
	root, floor := build(p, initial)
	return &Composer{palette: p, root: root, floor: floor, applied: initial}
}

// Update applies f to the floor. Call once per frame before drawing; calling it again with
// the same finish leaves the floor unchanged.
func (c *Composer) Update(f finish.Option) {
	c.floor.Material = DeriveFloorMaterial(f)
	c.applied = f
}

// Applied returns the finish the floor currently shows.
func (c *Composer) Applied() finish.Option {
	return c.applied
}

// Root returns the live tree. The renderer reads it; callers must not restructure it.
func (c *Composer) Root() *scene.Node {
	return c.root
}

// Floor returns the floor node.
func (c *Composer) Floor() *scene.Node {
	return c.floor
}

// snapshot returns a deep copy of the tree.
func (c *Composer) snapshot() *scene.Node {
	return c.root.Clone()
}

// Lights returns the apartment's ambient and point lights.
func (c *Composer) Lights() []scene.Light {
	out := make([]scene.Light, len(roomLights))
	copy(out, roomLights)
	return out
}

// Textures returns the texture URIs used by the fixed surfaces (everything except the floor).
func (c *Composer) Textures() []string {
	return c.palette.textures()
}

// Census counts the structural elements of an apartment tree.
type Census struct {
	Floors        int
	ExteriorWalls int
	Partitions    int
	Windows       int
	// Furniture maps zone name to the number of furniture items in it.
	Furniture map[string]int
}

// Count takes a census of root.
func Count(root *scene.Node) Census {
	c := Census{
		Floors:        len(root.FindAll(scene.RoleFloor)),
		ExteriorWalls: len(root.FindAll(scene.RoleExteriorWall)),
		Partitions:    len(root.FindAll(scene.RolePartition)),
		Windows:       len(root.FindAll(scene.RoleWindow)),
		Furniture:     make(map[string]int),
	}
	for _, z := range root.FindAll(scene.RoleZone) {
		for _, child := range z.Children {
			if child.Role == scene.RoleFurniture {
				c.Furniture[z.Name]++
			}
		}
	}
	return c
}
