package geometry

import (
	"math"
	"testing"

	"github.com/torjusb/tinyraytracer/pkg/core"
	"github.com/torjusb/tinyraytracer/pkg/material"
)

func testMaterial() material.Material {
	return material.NewMaterial(core.NewVec3(0.4, 0.4, 0.3), 0.6, 0.3, 50.0)
}

func TestSphereIntersectMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
	}{
		{
			name:         "closest approach exceeds radius",
			rayOrigin:    core.NewVec3(2, 0, 5),
			rayDirection: core.NewVec3(0, 0, -1),
		},
		{
			name:         "sphere entirely behind origin",
			rayOrigin:    core.NewVec3(0, 0, -5),
			rayDirection: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			if dist, ok := sphere.Intersect(ray); ok {
				t.Errorf("Expected miss, got hit at t=%f", dist)
			}
		})
	}
}

func TestSphereIntersectFrontHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	dist, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	// The nearer of the two roots is the entry point at z=-4
	if math.Abs(dist-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", dist)
	}
}

func TestSphereIntersectFromInside(t *testing.T) {
	center := core.NewVec3(0, 0, -5)
	sphere := NewSphere(center, 2.0, testMaterial())

	// Origin inside the sphere, slightly off center
	ray := core.NewRay(core.NewVec3(0.5, 0, -5), core.NewVec3(0, 0, -1))

	dist, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected hit from inside the sphere, got miss")
	}
	if dist <= 0 {
		t.Errorf("Expected positive exit distance, got %f", dist)
	}

	// The exit point must lie on the sphere's surface
	point := ray.At(dist)
	if r := point.Subtract(center).Length(); math.Abs(r-sphere.Radius) > 1e-9 {
		t.Errorf("Exit point distance from center = %f, want %f", r, sphere.Radius)
	}
}

func TestSphereIntersectTangent(t *testing.T) {
	// Closest approach is exactly the radius, so t0 == t1
	sphere := NewSphere(core.NewVec3(1, 0, -5), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	dist, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("Expected tangent hit, got miss")
	}
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		t.Fatalf("Expected finite distance, got %f", dist)
	}
	if math.Abs(dist-5.0) > 1e-9 {
		t.Errorf("Expected t=5 at tangent point, got t=%f", dist)
	}
}

func TestSphereNormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 2.0, testMaterial())
	point := core.NewVec3(0, 2, -5)

	normal := sphere.NormalAt(point)
	expected := core.NewVec3(0, 1, 0)

	if math.Abs(normal.X-expected.X) > 1e-9 ||
		math.Abs(normal.Y-expected.Y) > 1e-9 ||
		math.Abs(normal.Z-expected.Z) > 1e-9 {
		t.Errorf("Expected normal %v, got %v", expected, normal)
	}
}
