// Package scene is a renderer-independent scene graph: a strict tree of
// positioned primitives with materials. Drawing lives in package render.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"

	"tile-configurator/internal/finish"
)

// Shape is the kind of primitive a node draws. ShapeNone marks a pure group.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeBox
	ShapePlane
)

func (s Shape) String() string {
	switch s {
	case ShapeBox:
		return "box"
	case ShapePlane:
		return "plane"
	}
	return "group"
}

// Geometry describes a primitive centered on its node origin.
// Box: Size is width (X), height (Y), depth (Z).
// Plane: lies in the local XY plane facing +Z; Size.X() is width, Size.Y() height.
type Geometry struct {
	Shape Shape
	Size  mgl32.Vec3
}

// Box returns box geometry of the given extents.
func Box(w, h, d float32) Geometry {
	return Geometry{Shape: ShapeBox, Size: mgl32.Vec3{w, h, d}}
}

// Plane returns plane geometry of the given width and height.
func Plane(w, h float32) Geometry {
	return Geometry{Shape: ShapePlane, Size: mgl32.Vec3{w, h, 0}}
}

// Tiling is the number of texture repetitions across a surface's UV space.
type Tiling struct {
	U, V float32
}

// NoTiling maps the texture once.
var NoTiling = Tiling{U: 1, V: 1}

// Material is how a primitive looks. Texture is an image URI; empty means flat color.
// Opacity below 1 marks the material transparent.
type Material struct {
	Color   finish.Color
	Texture string
	Tiling  Tiling
	Opacity float32
	// NeedsUpdate asks the renderer to rebind the material's texture before drawing.
	NeedsUpdate bool
}

// Flat returns an opaque untextured material.
func Flat(c finish.Color) Material {
	return Material{Color: c, Tiling: NoTiling, Opacity: 1}
}

// Textured returns an opaque material tinted by c.
func Textured(c finish.Color, texture string, tiling Tiling) Material {
	return Material{Color: c, Texture: texture, Tiling: tiling, Opacity: 1}
}

// Transparent reports whether the material must be drawn after opaque geometry.
func (m Material) Transparent() bool {
	return m.Opacity < 1
}

// Role tags the nodes the apartment cares about so they can be found and counted.
type Role string

const (
	RoleNone         Role = ""
	RoleApartment    Role = "apartment"
	RoleFloor        Role = "floor"
	RoleExteriorWall Role = "exterior-wall"
	RolePartition    Role = "partition"
	RoleWindow       Role = "window"
	RoleZone         Role = "zone"
	RoleFurniture    Role = "furniture"
)

// Node is one element of the tree. A node with Geometry.Shape == ShapeNone only groups
// its children. Rotation holds Euler angles in radians applied in XYZ order.
// Children are owned by the node; a node never appears twice in a tree.
type Node struct {
	Name     string
	Role     Role
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Geometry Geometry
	Material Material
	Children []*Node
}

// Group returns a grouping node.
func Group(name string, role Role, position, rotation mgl32.Vec3, children ...*Node) *Node {
	return &Node{Name: name, Role: role, Position: position, Rotation: rotation, Children: children}
}

// Mesh returns a drawable node.
func Mesh(name string, position, rotation mgl32.Vec3, geom Geometry, mtl Material) *Node {
	return &Node{Name: name, Position: position, Rotation: rotation, Geometry: geom, Material: mtl}
}

// IsMesh reports whether the node draws a primitive.
func (n *Node) IsMesh() bool {
	return n.Geometry.Shape != ShapeNone
}

// Add appends children.
func (n *Node) Add(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Local returns the node's transform relative to its parent: translate, then rotate X, Y, Z.
func (n *Node) Local() mgl32.Mat4 {
	t := mgl32.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := mgl32.HomogRotate3DX(n.Rotation.X()).
		Mul4(mgl32.HomogRotate3DY(n.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(n.Rotation.Z()))
	return t.Mul4(r)
}

// Visitor receives each node with its world transform. Returning false skips the node's children.
type Visitor func(n *Node, world mgl32.Mat4) bool

// Walk visits n and its descendants depth-first, parents before children.
func (n *Node) Walk(fn Visitor) {
	n.walk(mgl32.Ident4(), fn)
}

func (n *Node) walk(parent mgl32.Mat4, fn Visitor) {
	world := parent.Mul4(n.Local())
	if !fn(n, world) {
		return
	}
	for _, c := range n.Children {
		c.walk(world, fn)
	}
}

// FindAll returns every node with the given role, in walk order.
func (n *Node) FindAll(role Role) []*Node {
	var out []*Node
	n.Walk(func(c *Node, _ mgl32.Mat4) bool {
		if c.Role == role {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Find returns the first node with the given name, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node, _ mgl32.Mat4) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node, mgl32.Mat4) bool {
		total++
		return true
	})
	return total
}

// Clone returns a deep copy of the tree. Mutating the copy never reaches n.
func (n *Node) Clone() *Node {
	out := &Node{}
	if err := copier.CopyWithOption(out, n, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched types, which cannot happen for Node -> Node.
		panic(err)
	}
	return out
}
