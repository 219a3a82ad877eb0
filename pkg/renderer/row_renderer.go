package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// RowRenderer renders full image rows using an integrator. It holds only
// read-only state and is shared by all workers.
type RowRenderer struct {
	world      core.Hittable
	camera     *Camera
	integrator integrator.Integrator
}

// NewRowRenderer creates a row renderer for the given world, camera and integrator
func NewRowRenderer(world core.Hittable, camera *Camera, integratorInst integrator.Integrator) *RowRenderer {
	return &RowRenderer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
	}
}

// RenderRow fills out with the averaged color of every pixel in row j.
// All randomness for the row is drawn from sampler.
func (rr *RowRenderer) RenderRow(j int, out []core.Color, sampler core.Sampler) RenderStats {
	spp := rr.camera.SamplesPerPixel()
	stats := RenderStats{Rows: 1}

	for i := range out {
		var ps PixelStats
		for s := 0; s < spp; s++ {
			ray := rr.camera.GetRay(i, j, sampler)
			ps.AddSample(rr.integrator.RayColor(ray, rr.world, sampler))
		}
		out[i] = ps.GetColor()
		stats.TotalPixels++
		stats.TotalSamples += ps.SampleCount
	}

	return stats
}
