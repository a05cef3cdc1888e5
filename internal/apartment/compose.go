package apartment

import (
	"github.com/go-gl/mathgl/mgl32"

	"tile-configurator/internal/finish"
	"tile-configurator/internal/scene"
)

// FloorName is the name of the single node whose material follows the selection.
const FloorName = "floor"

// DeriveFloorMaterial returns the floor material for a finish: its tint and texture,
// tiled 20×20, flagged for a texture rebind. It is pure; equal finishes give equal materials.
func DeriveFloorMaterial(f finish.Option) scene.Material {
	m := scene.Textured(f.BaseColor, f.Texture, FloorTiling)
	m.NeedsUpdate = true
	return m
}

// build instantiates the authored layout into a fresh tree. The floor starts with initial's material.
func build(p Palette, initial finish.Option) (root, floor *scene.Node) {
	floor = scene.Mesh(FloorName, v(0, -0.1, 0), v(-halfPi, 0, 0),
		scene.Plane(footprintWidth, footprintDepth), DeriveFloorMaterial(initial))
	floor.Role = scene.RoleFloor

	root = scene.Group("apartment", scene.RoleApartment, mgl32.Vec3{}, mgl32.Vec3{}, floor)
	for _, w := range exteriorWalls {
		n := instantiateWall(w, p)
		n.Role = scene.RoleExteriorWall
		root.Add(n)
	}
	for _, ps := range partitions {
		g := scene.Group(ps.name, scene.RolePartition, mgl32.Vec3{}, mgl32.Vec3{})
		for _, seg := range ps.segments {
			g.Add(instantiateWall(seg, p))
		}
		root.Add(g)
	}
	for _, z := range zones {
		g := scene.Group(z.name, scene.RoleZone, mgl32.Vec3{}, mgl32.Vec3{})
		for _, it := range z.items {
			g.Add(instantiate(it, p))
		}
		root.Add(g)
	}
	for _, w := range windows {
		root.Add(instantiateWindow(w, p))
	}
	return root, floor
}

func instantiateWall(w wallSpec, p Palette) *scene.Node {
	return scene.Mesh(w.name, w.position, w.rotation, scene.Plane(w.width, wallHeight), p.wall())
}

// instantiate turns one furniture descriptor into a group of primitive meshes.
func instantiate(it item, p Palette) *scene.Node {
	g := scene.Group(it.name, scene.RoleFurniture, it.anchor, it.rotation)
	shared := p.material(it.surface)
	for _, pt := range it.parts {
		mtl := shared
		if pt.override != nil {
			mtl = *pt.override
		}
		g.Add(scene.Mesh(it.name+"/"+pt.name, pt.offset, mgl32.Vec3{}, pt.geom, mtl))
	}
	return g
}

func instantiateWindow(w windowSpec, p Palette) *scene.Node {
	g := scene.Group(w.name, scene.RoleWindow, w.position, w.rotation)
	g.Add(
		scene.Mesh(w.name+"/glass", mgl32.Vec3{}, mgl32.Vec3{}, scene.Plane(2, 2), p.glass()),
		scene.Mesh(w.name+"/frame", v(0, 0, 0.01), mgl32.Vec3{}, scene.Box(2, 2, 0.1), scene.Flat(p.WoodColor)),
	)
	return g
}
