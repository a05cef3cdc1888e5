package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"tile-configurator/internal/finish"
)

// LightKind selects how a light contributes.
type LightKind int

const (
	LightAmbient LightKind = iota
	LightPoint
)

// Light is an ambient or point light. Position is ignored for ambient lights.
type Light struct {
	Kind      LightKind
	Position  mgl32.Vec3
	Intensity float32
	Color     finish.Color
}

// Ambient returns a white ambient light.
func Ambient(intensity float32) Light {
	return Light{Kind: LightAmbient, Intensity: intensity, Color: finish.White}
}

// Point returns a white point light.
func Point(x, y, z, intensity float32) Light {
	return Light{Kind: LightPoint, Position: mgl32.Vec3{x, y, z}, Intensity: intensity, Color: finish.White}
}
