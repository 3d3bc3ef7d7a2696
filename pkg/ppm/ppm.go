// Package ppm serializes framebuffers as binary (P6) portable pixmaps.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/torjusb/tinyraytracer/pkg/renderer"
)

// Encode writes the framebuffer to w as a binary PPM: a "P6" header with the
// image dimensions and a maximum channel value of 255, followed by row-major
// RGB triples. Each channel is clamped to [0,1], scaled by 255 and truncated
// to 8 bits.
func Encode(w io.Writer, fb *renderer.Framebuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	pixel := make([]byte, 3)
	for _, c := range fb.Pixels {
		c = c.Clamp(0.0, 1.0)
		pixel[0] = uint8(255 * c.X)
		pixel[1] = uint8(255 * c.Y)
		pixel[2] = uint8(255 * c.Z)
		if _, err := bw.Write(pixel); err != nil {
			return fmt.Errorf("writing pixels: %w", err)
		}
	}

	return bw.Flush()
}

// WriteFile encodes the framebuffer to a PPM file at path. The framebuffer
// must already be fully computed; no bytes are written before the file is
// created, and any write failure is returned to the caller.
func WriteFile(path string, fb *renderer.Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Encode(f, fb); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
