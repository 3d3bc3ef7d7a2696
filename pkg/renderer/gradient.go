package renderer

import "github.com/torjusb/tinyraytracer/pkg/core"

// RenderGradient fills a framebuffer with a red/green gradient derived from
// the pixel coordinates alone. No rays are cast; this exercises the
// framebuffer and encoder path by itself and gives a known-good test image.
func RenderGradient(width, height int) *Framebuffer {
	fb := NewFramebuffer(width, height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			fb.Set(i, j, core.NewVec3(
				float64(j)/float64(height),
				float64(i)/float64(width),
				0,
			))
		}
	}
	return fb
}
