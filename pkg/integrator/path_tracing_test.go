package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MockMaterial implements core.Scatterer for testing
type MockMaterial struct {
	scatterFn func(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool)
	calls     int
}

func (m *MockMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	m.calls++
	return m.scatterFn(rayIn, hit, sampler)
}

// MockShape implements core.Hittable for testing
type MockShape struct {
	hitFn func(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool)
}

func (m MockShape) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	return m.hitFn(ray, rayT)
}

func colorNear(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance && math.Abs(a.G-b.G) <= tolerance && math.Abs(a.B-b.B) <= tolerance
}

func mustSphere(t *testing.T, center core.Vec3, radius float64, mat core.Scatterer) *geometry.Sphere {
	t.Helper()
	s, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return s
}

func TestRayColor_MissReturnsSky(t *testing.T) {
	gray, err := material.NewLambertian(core.MustColor(0.5, 0.5, 0.5))
	if err != nil {
		t.Fatalf("NewLambertian: %v", err)
	}
	world := geometry.NewGroup(
		mustSphere(t, core.NewVec3(0, 0, -1), 0.5, gray),
		mustSphere(t, core.NewVec3(0, -100.5, -1), 100, gray),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	got := RayColorDepth(ray, world, core.NewSeededSampler(1), 50)
	if got != SkyColor {
		t.Errorf("Expected pure sky color %v, got %v", SkyColor, got)
	}
}

func TestBackground_Gradient(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color
	}{
		{"straight up", core.NewVec3(0, 1, 0), SkyColor},
		{"straight down", core.NewVec3(0, -3, 0), core.White},
		{"horizon", core.NewVec3(1, 0, 0), core.Color{R: 0.75, G: 0.85, B: 1.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Background(core.NewRay(core.Vec3{}, tt.direction))
			if !colorNear(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRayColor_ZeroDepthIsBlack(t *testing.T) {
	mat := &MockMaterial{scatterFn: func(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
		return core.ScatterResult{Scattered: rayIn, Attenuation: core.White}, true
	}}
	worlds := map[string]core.Hittable{
		"empty":  geometry.NewGroup(),
		"sphere": geometry.NewGroup(mustSphere(t, core.NewVec3(0, 0, -1), 0.5, mat)),
	}

	for name, world := range worlds {
		t.Run(name, func(t *testing.T) {
			got := RayColorDepth(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), world, core.NewSeededSampler(1), 0)
			if got != core.Black {
				t.Errorf("Expected black, got %v", got)
			}
		})
	}
	if mat.calls != 0 {
		t.Errorf("Material should not be consulted with zero depth, got %d calls", mat.calls)
	}
}

func TestRayColor_AbsorptionIsBlack(t *testing.T) {
	absorber := &MockMaterial{scatterFn: func(core.Ray, core.HitRecord, core.Sampler) (core.ScatterResult, bool) {
		return core.ScatterResult{}, false
	}}
	world := geometry.NewGroup(mustSphere(t, core.NewVec3(0, 0, -1), 0.5, absorber))

	got := RayColorDepth(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, core.NewSeededSampler(1), 10)
	if got != core.Black {
		t.Errorf("Expected black, got %v", got)
	}
}

func TestRayColor_AttenuationMultipliesBackground(t *testing.T) {
	attenuation := core.MustColor(0.5, 0.25, 1.0)
	mat := &MockMaterial{scatterFn: func(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
		// Bounce straight up into the sky
		return core.ScatterResult{
			Scattered:   core.NewRay(hit.Point, core.NewVec3(0, 1, 0)),
			Attenuation: attenuation,
		}, true
	}}

	// Hits only rays travelling along -Z
	shape := MockShape{hitFn: func(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
		if ray.Direction.Z < 0 {
			return &core.HitRecord{Point: core.NewVec3(0, 0, -1), Normal: core.NewVec3(0, 0, 1), T: 1, FrontFace: true, Material: mat}, true
		}
		return nil, false
	}}

	got := RayColorDepth(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), shape, core.NewSeededSampler(1), 5)
	expected := attenuation.MultiplyColor(SkyColor)
	if !colorNear(got, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	// With a single bounce of budget the scattered ray is never traced
	if got := RayColorDepth(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), shape, core.NewSeededSampler(1), 1); got != core.Black {
		t.Errorf("Expected black with exhausted budget, got %v", got)
	}
}

func TestRayColor_RejectsSelfIntersection(t *testing.T) {
	var seen core.Interval
	shape := MockShape{hitFn: func(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
		seen = rayT
		return nil, false
	}}

	RayColorDepth(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), shape, core.NewSeededSampler(1), 3)
	if seen.Min != MinHitDistance || !math.IsInf(seen.Max, 1) {
		t.Errorf("Expected window (%f, +Inf), got %v", MinHitDistance, seen)
	}
}

func TestRayColor_MirrorBoxBounceBudget(t *testing.T) {
	// A ray trapped between two parallel mirrors never escapes
	mirror, err := material.NewMetal(core.MustColor(0.9, 0.9, 0.9))
	if err != nil {
		t.Fatalf("NewMetal: %v", err)
	}
	world := geometry.NewGroup(
		mustSphere(t, core.NewVec3(0, 0, 0), 10, mirror),
	)
	got := RayColorDepth(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, core.NewSeededSampler(1), 8)
	if got != core.Black {
		t.Errorf("Expected black after exhausting bounces inside a mirror sphere, got %v", got)
	}
}

func TestPathTracingIntegrator(t *testing.T) {
	if _, err := NewPathTracingIntegrator(-1); err == nil {
		t.Error("Expected error for negative depth")
	}

	pt, err := NewPathTracingIntegrator(4)
	if err != nil {
		t.Fatalf("NewPathTracingIntegrator: %v", err)
	}
	if pt.MaxDepth() != 4 {
		t.Errorf("Expected max depth 4, got %d", pt.MaxDepth())
	}

	var _ Integrator = pt
	got := pt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), geometry.NewGroup(), core.NewSeededSampler(1))
	if got != SkyColor {
		t.Errorf("Expected sky color, got %v", got)
	}
}
