// Package render draws a scene tree with raylib: lazily created unit meshes, one lit
// shader, per-node textures looked up by URI. Untextured or not-yet-loaded surfaces
// are drawn with their flat tint.
package render

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"tile-configurator/internal/finish"
	"tile-configurator/internal/scene"
)

// TextureSource resolves texture URIs to uploaded textures.
type TextureSource interface {
	Get(uri string) (rl.Texture2D, bool)
}

// Renderer draws scene trees. Meshes and the shader are created on first Draw so that
// GPU resources are allocated after the window/OpenGL context exists.
type Renderer struct {
	ready    bool
	box      rl.Mesh
	plane    rl.Mesh
	mtl      rl.Material
	white    rl.Texture2D // raylib's default 1x1 texture, bound for untextured surfaces
	lit      litShader
	litValid bool
	// bindings caches each node's resolved texture; a node is re-resolved while unbound
	// or while its material asks for an update.
	bindings map[*scene.Node]rl.Texture2D
}

// New returns a renderer with no GPU resources yet.
func New() *Renderer {
	return &Renderer{bindings: make(map[*scene.Node]rl.Texture2D)}
}

func (r *Renderer) ensure() {
	if r.ready {
		return
	}
	r.box = rl.GenMeshCube(1, 1, 1)
	r.plane = rl.GenMeshPlane(1, 1, 1, 1)
	r.mtl = rl.LoadMaterialDefault()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		r.white = albedo.Texture
	}
	if sh, ok := loadLitShader(); ok {
		r.lit = sh
		r.litValid = true
		r.mtl.Shader = sh.shader
	}
	r.ready = true
}

// drawItem is one mesh to draw with its final model matrix.
type drawItem struct {
	node  *scene.Node
	model mgl32.Mat4
	dist  float32 // squared distance from the camera, for transparent ordering
}

// collect flattens the tree into opaque items (tree order) and transparent items (far to near).
func collect(root *scene.Node, viewPos mgl32.Vec3) (opaque, transparent []drawItem) {
	root.Walk(func(n *scene.Node, world mgl32.Mat4) bool {
		if !n.IsMesh() {
			return true
		}
		it := drawItem{node: n, model: meshModel(world, n.Geometry)}
		if n.Material.Transparent() {
			center := world.Col(3).Vec3()
			it.dist = center.Sub(viewPos).LenSqr()
			transparent = append(transparent, it)
		} else {
			opaque = append(opaque, it)
		}
		return true
	})
	sort.SliceStable(transparent, func(i, j int) bool { return transparent[i].dist > transparent[j].dist })
	return opaque, transparent
}

// meshModel maps the unit mesh for geom onto the node's world transform.
// raylib's plane lies in XZ facing +Y; scene planes lie in XY facing +Z, hence the X rotation.
func meshModel(world mgl32.Mat4, geom scene.Geometry) mgl32.Mat4 {
	switch geom.Shape {
	case scene.ShapeBox:
		return world.Mul4(mgl32.Scale3D(geom.Size.X(), geom.Size.Y(), geom.Size.Z()))
	case scene.ShapePlane:
		return world.Mul4(mgl32.Scale3D(geom.Size.X(), geom.Size.Y(), 1)).Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(90)))
	}
	return world
}

func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func tintColor(c finish.Color, opacity float32) rl.Color {
	a := opacity
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return rl.NewColor(c.R, c.G, c.B, uint8(a*255+0.5))
}

// Draw renders root lit by lights, as seen from viewPos. Call between BeginMode3D and EndMode3D.
func (r *Renderer) Draw(root *scene.Node, lights []scene.Light, viewPos mgl32.Vec3, textures TextureSource) {
	r.ensure()
	if r.litValid {
		r.lit.setFrame([3]float32{viewPos.X(), viewPos.Y(), viewPos.Z()}, packLights(lights))
	}
	opaque, transparent := collect(root, viewPos)

	rl.DisableBackfaceCulling()
	for _, it := range opaque {
		r.drawItem(it, textures)
	}
	rl.DisableDepthMask()
	for _, it := range transparent {
		r.drawItem(it, textures)
	}
	rl.EnableDepthMask()
	rl.EnableBackfaceCulling()
}

func (r *Renderer) drawItem(it drawItem, textures TextureSource) {
	m := it.node.Material
	tex, textured := r.texture(it.node, textures)
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tintColor(m.Color, m.Opacity)
		if textured {
			albedo.Texture = tex
		} else {
			albedo.Texture = r.white
		}
	}
	if r.litValid {
		r.lit.setSurface(textured, [2]float32{m.Tiling.U, m.Tiling.V})
	}
	mesh := r.box
	if it.node.Geometry.Shape == scene.ShapePlane {
		mesh = r.plane
	}
	rl.DrawMesh(mesh, r.mtl, toMatrix(it.model))
}

// texture returns the node's bound texture, resolving it when needed.
func (r *Renderer) texture(n *scene.Node, textures TextureSource) (rl.Texture2D, bool) {
	if n.Material.Texture == "" || textures == nil {
		delete(r.bindings, n)
		return rl.Texture2D{}, false
	}
	if tex, ok := r.bindings[n]; ok && !n.Material.NeedsUpdate {
		return tex, true
	}
	tex, ok := textures.Get(n.Material.Texture)
	if !ok {
		delete(r.bindings, n)
		return rl.Texture2D{}, false
	}
	r.bindings[n] = tex
	return tex, true
}

// Unload releases GPU resources.
func (r *Renderer) Unload() {
	if !r.ready {
		return
	}
	rl.UnloadMesh(&r.box)
	rl.UnloadMesh(&r.plane)
	// UnloadMaterial frees the lit shader and any non-default map texture, so the albedo
	// slot goes back to the default texture first; store textures are freed by their owner.
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Texture = r.white
	}
	rl.UnloadMaterial(r.mtl)
	r.release()
}

// release forgets everything that referred to GPU objects.
func (r *Renderer) release() {
	r.mtl = rl.Material{}
	r.lit = litShader{}
	r.litValid = false
	r.white = rl.Texture2D{}
	clear(r.bindings)
	r.ready = false
}
