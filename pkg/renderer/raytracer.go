package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrNilWorld is returned when a raytracer is created without anything to render
var ErrNilWorld = errors.New("world is nil")

// RenderOptions controls how a render is scheduled. None of the fields affect the
// rendered pixels except Seed.
type RenderOptions struct {
	NumWorkers int   // Number of parallel workers (0 = auto-detect)
	Seed       int64 // Base seed; row j samples from Seed+j
}

// DefaultRenderOptions returns auto-detected workers and seed 42
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		NumWorkers: 0,
		Seed:       42,
	}
}

// Raytracer renders a world through a camera into a Frame
type Raytracer struct {
	world      core.Hittable
	camera     *Camera
	integrator integrator.Integrator
	options    RenderOptions
	logger     core.Logger
}

// NewRaytracer creates a raytracer using a path tracing integrator bounded by
// the camera's max depth. A nil logger is replaced by the default stdout logger.
func NewRaytracer(world core.Hittable, camera *Camera, options RenderOptions, logger core.Logger) (*Raytracer, error) {
	if camera == nil {
		return nil, fmt.Errorf("%w: camera is nil", core.ErrInvalidCamera)
	}
	pt, err := integrator.NewPathTracingIntegrator(camera.MaxDepth())
	if err != nil {
		return nil, err
	}
	return NewRaytracerWithIntegrator(world, camera, pt, options, logger)
}

// NewRaytracerWithIntegrator creates a raytracer with an explicit integrator
func NewRaytracerWithIntegrator(world core.Hittable, camera *Camera, integratorInst integrator.Integrator, options RenderOptions, logger core.Logger) (*Raytracer, error) {
	if world == nil {
		return nil, ErrNilWorld
	}
	if camera == nil {
		return nil, fmt.Errorf("%w: camera is nil", core.ErrInvalidCamera)
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
		options:    options,
		logger:     logger,
	}, nil
}

// Render renders every row of the image and returns the averaged linear colors.
// The frame is identical for identical seeds regardless of worker count.
func (rt *Raytracer) Render() (*Frame, RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()
	frame := NewFrame(width, height)

	pool := NewWorkerPool(NewRowRenderer(rt.world, rt.camera, rt.integrator), rt.options.NumWorkers, height)
	stats := RenderStats{
		SamplesPerPixel: rt.camera.SamplesPerPixel(),
		Workers:         pool.GetNumWorkers(),
	}

	rt.logger.Printf("Rendering %dx%d at %d samples/pixel, max depth %d (using %d workers)...\n",
		width, height, rt.camera.SamplesPerPixel(), rt.camera.MaxDepth(), pool.GetNumWorkers())

	pool.Start()
	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{
			Row:    j,
			Seed:   rt.options.Seed + int64(j),
			Pixels: frame.Row(j),
		})
	}

	lastDecile := 0
	for completed := 1; completed <= height; completed++ {
		result, ok := pool.GetResult()
		if !ok {
			pool.Stop()
			return nil, stats, fmt.Errorf("worker pool closed after %d of %d rows", completed-1, height)
		}
		stats.merge(result.Stats)

		if decile := completed * 10 / height; decile > lastDecile {
			lastDecile = decile
			rt.logger.Printf("Progress: %d%% (%d/%d rows)\n", decile*10, completed, height)
		}
	}
	pool.Stop()

	stats.Duration = time.Since(start)
	stats.finalize()
	rt.logger.Printf("Render complete: %s\n", stats.Summary())

	return frame, stats, nil
}

// Camera returns the raytracer's camera
func (rt *Raytracer) Camera() *Camera { return rt.camera }
