// Package renderer drives the per-pixel render loop and owns the
// output pixel buffer.
package renderer

import (
	"runtime"
	"sync"

	"github.com/ipersids/go-ray-tracer/pkg/core"
	"github.com/ipersids/go-ray-tracer/pkg/scene"
)

// Renderer walks every canvas pixel, casts one primary ray through it
// and asks the world for the color. The world is read-only during a
// pass, so rows are rendered in parallel by a fixed pool of workers.
type Renderer struct {
	world      *scene.World
	camera     *scene.Camera
	numWorkers int
	logger     core.Logger
}

// NewRenderer creates a renderer. numWorkers <= 0 means one worker per
// CPU; a nil logger disables progress output.
func NewRenderer(world *scene.World, camera *scene.Camera, numWorkers int, logger core.Logger) *Renderer {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Renderer{
		world:      world,
		camera:     camera,
		numWorkers: numWorkers,
		logger:     logger,
	}
}

// Render produces the full pixel buffer. Workers claim whole rows, so
// no two goroutines ever touch the same pixel; the first error aborts
// the pass.
func (r *Renderer) Render() (*Canvas, error) {
	canvas := NewCanvas(r.camera.Width, r.camera.Height)

	rows := make(chan int, r.camera.Height)
	for y := 0; y < r.camera.Height; y++ {
		rows <- y
	}
	close(rows)

	errCh := make(chan error, r.numWorkers)
	var wg sync.WaitGroup
	for i := 0; i < r.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				if err := r.renderRow(canvas, y); err != nil {
					errCh <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}

	if r.logger != nil {
		r.logger.Printf("rendered %dx%d pixels with %d workers", canvas.Width, canvas.Height, r.numWorkers)
	}
	return canvas, nil
}

func (r *Renderer) renderRow(canvas *Canvas, y int) error {
	for x := 0; x < r.camera.Width; x++ {
		ray, err := r.camera.RayForPixel(x, y)
		if err != nil {
			return err
		}
		col, err := r.world.ColorAt(ray)
		if err != nil {
			return err
		}
		if err := canvas.SetPixel(x, y, col); err != nil {
			return err
		}
	}
	return nil
}
