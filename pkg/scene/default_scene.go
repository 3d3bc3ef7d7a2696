package scene

import (
	"github.com/torjusb/tinyraytracer/pkg/core"
	"github.com/torjusb/tinyraytracer/pkg/geometry"
	"github.com/torjusb/tinyraytracer/pkg/lights"
	"github.com/torjusb/tinyraytracer/pkg/material"
)

// NewDefaultScene creates the default scene: four spheres in two materials
// lit by three point lights
func NewDefaultScene() *Scene {
	// Create materials
	ivory := material.NewMaterial(core.NewVec3(0.4, 0.4, 0.3), 0.6, 0.3, 50.0)
	redRubber := material.NewMaterial(core.NewVec3(0.3, 0.1, 0.1), 0.9, 0.1, 10.0)

	s := &Scene{}

	// Add spheres to the scene
	s.AddSphere(geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, ivory))
	s.AddSphere(geometry.NewSphere(core.NewVec3(-1, -1.5, -12), 2, redRubber))
	s.AddSphere(geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, redRubber))
	s.AddSphere(geometry.NewSphere(core.NewVec3(7, 5, -18), 4, ivory))

	// Add lights to the scene
	s.AddLight(lights.NewPointLight(core.NewVec3(-20, 20, 20), 1.5))
	s.AddLight(lights.NewPointLight(core.NewVec3(30, 50, -25), 1.8))
	s.AddLight(lights.NewPointLight(core.NewVec3(30, 20, 30), 1.7))

	return s
}

// NewEmptyScene creates a scene with no objects and no lights. Every ray
// misses, so a render produces a solid background image; useful for
// exercising the output path on its own.
func NewEmptyScene() *Scene {
	return &Scene{}
}
