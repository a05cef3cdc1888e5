package render

import (
	"tile-configurator/internal/scene"
)

// lightUniforms is the packed form of a light list for the shader.
type lightUniforms struct {
	ambient     [3]float32
	positions   [maxLights * 3]float32
	intensities [maxLights]float32
}

// packLights sums ambient lights and fills point-light slots in order. Point lights
// beyond maxLights are dropped.
func packLights(lights []scene.Light) lightUniforms {
	var u lightUniforms
	slot := 0
	for _, l := range lights {
		r := float32(l.Color.R) / 255 * l.Intensity
		g := float32(l.Color.G) / 255 * l.Intensity
		b := float32(l.Color.B) / 255 * l.Intensity
		switch l.Kind {
		case scene.LightAmbient:
			u.ambient[0] += r
			u.ambient[1] += g
			u.ambient[2] += b
		case scene.LightPoint:
			if slot >= maxLights {
				continue
			}
			u.positions[slot*3] = l.Position.X()
			u.positions[slot*3+1] = l.Position.Y()
			u.positions[slot*3+2] = l.Position.Z()
			u.intensities[slot] = l.Intensity
			slot++
		}
	}
	return u
}
