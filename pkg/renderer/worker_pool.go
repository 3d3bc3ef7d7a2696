package renderer

import (
	"runtime"
	"sync"
)

// RenderParallel computes the full frame using a pool of row workers. Pixel
// evaluations are independent and each row writes a disjoint slice of the
// framebuffer, so no locking is needed and the output is identical to
// Render. numWorkers <= 0 uses one worker per CPU.
func (rt *Raytracer) RenderParallel(numWorkers int) *Framebuffer {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	fb := NewFramebuffer(rt.camera.width, rt.camera.height)
	rows := make(chan int, fb.Height)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				rt.renderRows(fb, j, j+1)
			}
		}()
	}

	for j := 0; j < fb.Height; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	return fb
}
