package scene

import (
	"testing"

	"github.com/torjusb/tinyraytracer/pkg/core"
)

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if len(s.Spheres) != 4 {
		t.Errorf("Expected 4 spheres, got %d", len(s.Spheres))
	}
	if len(s.Lights) != 3 {
		t.Errorf("Expected 3 lights, got %d", len(s.Lights))
	}

	// Construction order is the nearest-hit tie-break order, so the ivory
	// sphere must stay first.
	first := s.Spheres[0]
	if first.Center != core.NewVec3(-3, 0, -16) || first.Radius != 2 {
		t.Errorf("Unexpected first sphere: center %v radius %f", first.Center, first.Radius)
	}
	if first.Material.Diffuse != core.NewVec3(0.4, 0.4, 0.3) {
		t.Errorf("Unexpected first material diffuse: %v", first.Material.Diffuse)
	}

	for i, sphere := range s.Spheres {
		if sphere.Radius <= 0 {
			t.Errorf("Sphere %d has non-positive radius %f", i, sphere.Radius)
		}
	}
	for i, light := range s.Lights {
		if light.Intensity <= 0 {
			t.Errorf("Light %d has non-positive intensity %f", i, light.Intensity)
		}
	}
}

func TestNewEmptyScene(t *testing.T) {
	s := NewEmptyScene()
	if len(s.Spheres) != 0 || len(s.Lights) != 0 {
		t.Errorf("Expected empty scene, got %d spheres and %d lights", len(s.Spheres), len(s.Lights))
	}
}
