package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"strings"
	"time"

	"github.com/torjusb/tinyraytracer/pkg/ppm"
	"github.com/torjusb/tinyraytracer/pkg/renderer"
	"github.com/torjusb/tinyraytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'empty' or 'gradient'")
	width := flag.Int("width", 1024, "Image width in pixels")
	height := flag.Int("height", 768, "Image height in pixels")
	fov := flag.Float64("fov", math.Pi/2, "Vertical field of view in radians")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	output := flag.String("o", "out.ppm", "Output file (.ppm or .png)")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		fmt.Fprintf(os.Stderr, "Image dimensions must be positive, got %dx%d\n", *width, *height)
		os.Exit(1)
	}

	startTime := time.Now()
	fb, err := render(*sceneType, *width, *height, *fov, *workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %dx%d in %v\n", *width, *height, time.Since(startTime))

	if err := writeOutput(*output, fb); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", *output)
}

// createScene builds one of the built-in scenes by name
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "empty":
		return scene.NewEmptyScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// render produces the framebuffer for the requested scene type. The
// "gradient" pseudo-scene casts no rays and exists to exercise the output
// path on its own.
func render(sceneType string, width, height int, fov float64, workers int) (*renderer.Framebuffer, error) {
	if sceneType == "gradient" {
		return renderer.RenderGradient(width, height), nil
	}

	s, err := createScene(sceneType)
	if err != nil {
		return nil, err
	}
	rt := renderer.NewRaytracer(s, width, height, fov)
	return rt.RenderParallel(workers), nil
}

// writeOutput encodes the framebuffer based on the output file extension:
// PNG for .png, binary PPM for everything else.
func writeOutput(path string, fb *renderer.Framebuffer) error {
	if !strings.HasSuffix(strings.ToLower(path), ".png") {
		return ppm.WriteFile(path, fb)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, fb.ToImage()); err != nil {
		f.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return f.Close()
}
