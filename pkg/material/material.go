// Package material defines the surface description used by the Phong shader.
package material

import "github.com/torjusb/tinyraytracer/pkg/core"

// Material describes how a surface responds to light. It is a plain value
// type: spheres hold their own copy, so scene construction never aliases
// mutable state between objects.
type Material struct {
	Diffuse          core.Vec3 // base surface color, channels nominally in [0,1]
	DiffuseWeight    float64   // albedo weight for the Lambertian term
	SpecularWeight   float64   // albedo weight for the specular highlight
	SpecularExponent float64   // Phong shininess, higher is tighter
}

// NewMaterial creates a new material
func NewMaterial(diffuse core.Vec3, diffuseWeight, specularWeight, specularExponent float64) Material {
	return Material{
		Diffuse:          diffuse,
		DiffuseWeight:    diffuseWeight,
		SpecularWeight:   specularWeight,
		SpecularExponent: specularExponent,
	}
}
