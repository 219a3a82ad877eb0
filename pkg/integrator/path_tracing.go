package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// MinHitDistance is the lower bound of the ray window; it keeps a bounced ray from
// re-hitting the surface it just left.
const MinHitDistance = 0.001

// SkyColor is the color at the top of the background gradient
var SkyColor = core.Color{R: 0.5, G: 0.7, B: 1.0}

// PathTracingIntegrator implements unidirectional path tracing against a background gradient
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator with the given bounce budget
func NewPathTracingIntegrator(maxDepth int) (*PathTracingIntegrator, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("max depth must be >= 0, got %d", maxDepth)
	}
	return &PathTracingIntegrator{maxDepth: maxDepth}, nil
}

// MaxDepth returns the bounce budget
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single ray using the configured bounce budget
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Hittable, sampler core.Sampler) core.Color {
	return RayColorDepth(ray, world, sampler, pt.maxDepth)
}

// RayColorDepth traces ray through world for at most depth bounces.
// Each bounce multiplies the running throughput by the material attenuation; a miss
// returns throughput times the background, absorption or an exhausted budget returns black.
func RayColorDepth(ray core.Ray, world core.Hittable, sampler core.Sampler, depth int) core.Color {
	throughput := core.White
	window := core.NewInterval(MinHitDistance, math.Inf(1))

	for remaining := depth; remaining > 0; remaining-- {
		hit, isHit := world.Hit(ray, window)
		if !isHit {
			return throughput.MultiplyColor(Background(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Black
		}

		throughput = throughput.MultiplyColor(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Black
}

// Background returns a vertical white-to-sky gradient based on ray direction
func Background(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()
	a := 0.5 * (unitDirection.Y + 1.0)
	return core.White.Multiply(1.0 - a).Add(SkyColor.Multiply(a))
}
