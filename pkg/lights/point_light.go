// Package lights defines the light sources available to the shader.
package lights

import "github.com/torjusb/tinyraytracer/pkg/core"

// PointLight is an omnidirectional light at a fixed position. Intensity is a
// scalar multiplier applied to both the diffuse and specular terms; there is
// no distance falloff.
type PointLight struct {
	Position  core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
