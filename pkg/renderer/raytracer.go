// Package renderer drives the per-pixel intersection and shading pipeline.
package renderer

import (
	"math"

	"github.com/torjusb/tinyraytracer/pkg/core"
	"github.com/torjusb/tinyraytracer/pkg/geometry"
	"github.com/torjusb/tinyraytracer/pkg/scene"
)

// BackgroundColor is returned for every ray that intersects nothing.
var BackgroundColor = core.NewVec3(0.2, 0.7, 0.8)

var white = core.NewVec3(1, 1, 1)

// Hit describes the nearest surface a ray strikes
type Hit struct {
	Sphere *geometry.Sphere
	T      float64   // distance from the ray origin, >= 0
	Point  core.Vec3 // intersection point in world space
	Normal core.Vec3 // outward unit normal at the point
}

// Raytracer renders a scene with one primary ray per pixel and local Phong
// shading. It only reads scene state, so a single instance is safe to share
// across workers.
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, width, height int, fov float64) *Raytracer {
	return &Raytracer{
		scene:  s,
		camera: NewCamera(width, height, fov),
	}
}

// Camera returns the raytracer's camera
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// sceneIntersect finds the nearest sphere the ray hits. Spheres are scanned
// in scene order with a strict less-than comparison, so equal distances
// resolve to the earliest sphere.
func (rt *Raytracer) sceneIntersect(ray core.Ray) (Hit, bool) {
	nearest := -1
	nearestT := 0.0
	for i := range rt.scene.Spheres {
		if t, ok := rt.scene.Spheres[i].Intersect(ray); ok {
			if nearest < 0 || t < nearestT {
				nearest = i
				nearestT = t
			}
		}
	}
	if nearest < 0 {
		return Hit{}, false
	}

	sphere := &rt.scene.Spheres[nearest]
	point := ray.At(nearestT)
	return Hit{
		Sphere: sphere,
		T:      nearestT,
		Point:  point,
		Normal: sphere.NormalAt(point),
	}, true
}

// shade evaluates the Phong model at a hit point, accumulating the diffuse
// and specular response of every light. Channels are not clamped here; the
// encoder owns quantization.
func (rt *Raytracer) shade(ray core.Ray, hit Hit) core.Vec3 {
	var diffuse, specular float64
	for _, light := range rt.scene.Lights {
		lightDir := light.Position.Subtract(hit.Point).Normalize()
		diffuse += light.Intensity * math.Max(0, lightDir.Dot(hit.Normal))

		reflected := lightDir.Reflect(hit.Normal)
		specular += light.Intensity * math.Pow(
			math.Max(0, reflected.Dot(ray.Direction)),
			hit.Sphere.Material.SpecularExponent)
	}

	mat := hit.Sphere.Material
	return mat.Diffuse.Multiply(diffuse * mat.DiffuseWeight).
		Add(white.Multiply(specular * mat.SpecularWeight))
}

// CastRay resolves the nearest intersection for a ray and returns its shaded
// color, or the background color on a miss
func (rt *Raytracer) CastRay(ray core.Ray) core.Vec3 {
	hit, ok := rt.sceneIntersect(ray)
	if !ok {
		return BackgroundColor
	}
	return rt.shade(ray, hit)
}

// renderRows evaluates every pixel in rows [jStart, jEnd). Each pixel writes
// only its own framebuffer slot.
func (rt *Raytracer) renderRows(fb *Framebuffer, jStart, jEnd int) {
	for j := jStart; j < jEnd; j++ {
		for i := 0; i < fb.Width; i++ {
			fb.Set(i, j, rt.CastRay(rt.camera.RayForPixel(i, j)))
		}
	}
}

// Render computes the full frame sequentially and returns the framebuffer
func (rt *Raytracer) Render() *Framebuffer {
	fb := NewFramebuffer(rt.camera.width, rt.camera.height)
	rt.renderRows(fb, 0, fb.Height)
	return fb
}
