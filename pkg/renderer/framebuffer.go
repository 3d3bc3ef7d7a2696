package renderer

import (
	"image"
	"image/color"

	"github.com/torjusb/tinyraytracer/pkg/core"
)

// Framebuffer is a row-major grid of linear RGB samples, one Vec3 per pixel.
// Channel values are unbounded floats; clamping and quantization happen only
// when the buffer is encoded.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a zeroed framebuffer of the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color stored for pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[i+j*fb.Width]
}

// Set stores the color for pixel (i, j)
func (fb *Framebuffer) Set(i, j int, c core.Vec3) {
	fb.Pixels[i+j*fb.Width] = c
}

// ToImage converts the framebuffer to an RGBA image, clamping each channel
// to [0,1] and truncating to 8 bits
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			c := fb.At(i, j).Clamp(0.0, 1.0)
			img.SetRGBA(i, j, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}
