// Package scene assembles the objects and lights handed to the renderer.
package scene

import (
	"github.com/torjusb/tinyraytracer/pkg/geometry"
	"github.com/torjusb/tinyraytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. Sphere order matters:
// when two spheres report equal hit distances the earlier one wins, so the
// slices are never reordered after construction. Light order does not affect
// the result since light contributions are summed.
type Scene struct {
	Spheres []geometry.Sphere
	Lights  []lights.PointLight
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(sphere geometry.Sphere) {
	s.Spheres = append(s.Spheres, sphere)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(light lights.PointLight) {
	s.Lights = append(s.Lights, light)
}
