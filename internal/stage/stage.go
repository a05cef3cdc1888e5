// Package stage is the 3D viewport: a perspective camera with orbit controls that
// renders into an offscreen target drawn on the right-hand part of the window.
package stage

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"tile-configurator/internal/scene"
)

const fovy = 75

var background = rl.NewColor(30, 30, 34, 255)

// Stage holds the camera, its orbit state and the offscreen target.
// Camera: position (0,10,20), target (0,0,0), up (0,1,0), fovy 75°.
type Stage struct {
	Camera   rl.Camera3D
	orbit    Orbit
	viewport rl.Rectangle
	target   rl.RenderTexture2D
	hasRT    bool
	dragging bool
}

// New returns a stage looking at the origin from (0,10,20).
func New() *Stage {
	s := &Stage{orbit: OrbitFrom(mgl32.Vec3{0, 10, 20}, mgl32.Vec3{})}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = fovy
	s.Camera.Projection = rl.CameraPerspective
	s.syncCamera()
	return s
}

// Lights returns the stage's own key light and fill: a point light at (10,10,10) and ambient 0.5.
func (s *Stage) Lights() []scene.Light {
	return []scene.Light{scene.Ambient(0.5), scene.Point(10, 10, 10, 1)}
}

// ViewPos returns the camera position.
func (s *Stage) ViewPos() mgl32.Vec3 {
	return s.orbit.Position()
}

// SetViewport places the 3D view on screen. The offscreen target is recreated when the size changes.
// Call from the render thread after the window exists.
func (s *Stage) SetViewport(r rl.Rectangle) {
	if s.hasRT && (r.Width != s.viewport.Width || r.Height != s.viewport.Height) {
		rl.UnloadRenderTexture(s.target)
		s.hasRT = false
	}
	s.viewport = r
	if !s.hasRT && r.Width > 0 && r.Height > 0 {
		s.target = rl.LoadRenderTexture(int32(r.Width), int32(r.Height))
		s.hasRT = true
	}
}

func (s *Stage) syncCamera() {
	p := s.orbit.Position()
	t := s.orbit.Target
	s.Camera.Position = rl.NewVector3(p.X(), p.Y(), p.Z())
	s.Camera.Target = rl.NewVector3(t.X(), t.Y(), t.Z())
}

// Update runs once per frame: left drag orbits, right drag pans, the wheel zooms.
// A drag only starts inside the viewport, so clicks on the panel never move the camera.
func (s *Stage) Update() {
	mouse := rl.GetMousePosition()
	inside := rl.CheckCollisionPointRec(mouse, s.viewport)
	left := rl.IsMouseButtonDown(rl.MouseButtonLeft)
	right := rl.IsMouseButtonDown(rl.MouseButtonRight)
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) || rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		s.dragging = inside
	}
	if !left && !right {
		s.dragging = false
	}
	if s.dragging {
		d := rl.GetMouseDelta()
		if left {
			s.orbit.Rotate(d.X, d.Y)
		} else {
			s.orbit.Pan(d.X, d.Y)
		}
	}
	if inside {
		s.orbit.Zoom(rl.GetMouseWheelMove())
	}
	s.syncCamera()
}

// Draw renders draw3D with the stage camera into the offscreen target and blits it to the viewport.
func (s *Stage) Draw(draw3D func()) {
	if !s.hasRT {
		return
	}
	rl.BeginTextureMode(s.target)
	rl.ClearBackground(background)
	rl.BeginMode3D(s.Camera)
	draw3D()
	rl.EndMode3D()
	rl.EndTextureMode()

	// Render textures are stored upside down; flip with a negative source height.
	src := rl.NewRectangle(0, 0, float32(s.target.Texture.Width), -float32(s.target.Texture.Height))
	rl.DrawTexturePro(s.target.Texture, src, s.viewport, rl.NewVector2(0, 0), 0, rl.White)
}

// Unload releases the offscreen target.
func (s *Stage) Unload() {
	if s.hasRT {
		rl.UnloadRenderTexture(s.target)
		s.hasRT = false
	}
}
