package renderer

import (
	"math"

	"github.com/torjusb/tinyraytracer/pkg/core"
)

// Camera generates primary rays for a pinhole camera fixed at the origin
// looking down the -z axis.
type Camera struct {
	width      int
	height     int
	fov        float64 // vertical field of view in radians
	tanHalfFov float64
	aspect     float64
}

// NewCamera creates a camera for the given image dimensions and vertical
// field of view
func NewCamera(width, height int, fov float64) *Camera {
	return &Camera{
		width:      width,
		height:     height,
		fov:        fov,
		tanHalfFov: math.Tan(fov / 2),
		aspect:     float64(width) / float64(height),
	}
}

// RayForPixel returns the primary ray through the center of pixel (i, j),
// with i in [0, width) and j in [0, height). The direction is unit-length.
func (c *Camera) RayForPixel(i, j int) core.Ray {
	// Map the pixel center onto the image plane at z = -1, scaled by the
	// field of view and corrected for aspect ratio. y is flipped so that
	// j grows downward while world y grows upward.
	x := (2*(float64(i)+0.5)/float64(c.width) - 1) * c.tanHalfFov * c.aspect
	y := -(2*(float64(j)+0.5)/float64(c.height) - 1) * c.tanHalfFov
	direction := core.NewVec3(x, y, -1).Normalize()

	return core.NewRay(core.NewVec3(0, 0, 0), direction)
}
