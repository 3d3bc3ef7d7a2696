// Package geometry holds the scene primitives and their ray tests.
package geometry

import (
	"math"

	"github.com/torjusb/tinyraytracer/pkg/core"
	"github.com/torjusb/tinyraytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect tests the ray against the sphere and returns the distance to the
// nearest surface point in front of the ray origin. The ray direction must be
// unit-length for the returned distance to be metric. The second return value
// is false when the ray misses the sphere entirely or the sphere lies behind
// the origin.
func (s Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Project the center onto the ray and measure the perpendicular
	// distance from the center to the ray line.
	l := s.Center.Subtract(ray.Origin)
	tca := l.Dot(ray.Direction)
	d2 := l.Dot(l) - tca*tca
	if d2 > s.Radius*s.Radius {
		return 0, false
	}

	// Entry and exit parameters along the ray, t0 <= t1.
	thc := math.Sqrt(s.Radius*s.Radius - d2)
	t0 := tca - thc
	t1 := tca + thc

	if t1 < 0 {
		// Sphere is entirely behind the origin.
		return 0, false
	}
	if t0 < 0 {
		// Origin is inside the sphere; the exit point is the hit.
		return t1, true
	}
	return t0, true
}

// NormalAt returns the outward unit normal at a point on the sphere's surface
func (s Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
