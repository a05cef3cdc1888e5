package stage

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	minRadius   = 2
	maxRadius   = 60
	maxPitch    = math32.Pi/2 - 0.05
	rotateSpeed = 0.005 // radians per pixel
	zoomStep    = 0.9   // radius factor per wheel notch
	panSpeed    = 0.002 // world units per pixel per unit of radius
)

// Orbit is a camera on a sphere around Target: Yaw about +Y from +Z, Pitch above the XZ plane.
type Orbit struct {
	Target mgl32.Vec3
	Radius float32
	Yaw    float32
	Pitch  float32
}

// OrbitFrom returns the orbit that places the camera at position looking at target.
func OrbitFrom(position, target mgl32.Vec3) Orbit {
	d := position.Sub(target)
	r := d.Len()
	if r == 0 {
		return Orbit{Target: target, Radius: minRadius}
	}
	return Orbit{
		Target: target,
		Radius: r,
		Yaw:    math32.Atan2(d.X(), d.Z()),
		Pitch:  math32.Asin(d.Y() / r),
	}
}

// Position returns the camera position.
func (o Orbit) Position() mgl32.Vec3 {
	cp := math32.Cos(o.Pitch)
	return o.Target.Add(mgl32.Vec3{
		o.Radius * cp * math32.Sin(o.Yaw),
		o.Radius * math32.Sin(o.Pitch),
		o.Radius * cp * math32.Cos(o.Yaw),
	})
}

// Rotate turns the camera by a mouse drag of (dx, dy) pixels. Pitch stays short of the poles.
func (o *Orbit) Rotate(dx, dy float32) {
	o.Yaw -= dx * rotateSpeed
	o.Pitch += dy * rotateSpeed
	o.Pitch = clamp(o.Pitch, -maxPitch, maxPitch)
}

// Zoom moves the camera toward (wheel > 0) or away from the target.
func (o *Orbit) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	o.Radius *= math32.Pow(zoomStep, wheel)
	o.Radius = clamp(o.Radius, minRadius, maxRadius)
}

// Pan slides the target in the camera's view plane by a drag of (dx, dy) pixels.
func (o *Orbit) Pan(dx, dy float32) {
	forward := o.Target.Sub(o.Position()).Normalize()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	up := right.Cross(forward).Normalize()
	s := panSpeed * o.Radius
	o.Target = o.Target.Add(right.Mul(-dx * s)).Add(up.Mul(dy * s))
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
