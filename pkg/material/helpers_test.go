package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// fixedSampler returns the same value for every draw
type fixedSampler struct{ value float64 }

func (f fixedSampler) Get1D() float64   { return f.value }
func (f fixedSampler) Get2D() core.Vec2 { return core.NewVec2(f.value, f.value) }
func (f fixedSampler) Get3D() core.Vec3 { return core.NewVec3(f.value, f.value, f.value) }

func mustLambertian(t *testing.T, albedo core.Color) *Lambertian {
	t.Helper()
	l, err := NewLambertian(albedo)
	if err != nil {
		t.Fatalf("NewLambertian failed: %v", err)
	}
	return l
}

func mustMetal(t *testing.T, albedo core.Color) *Metal {
	t.Helper()
	m, err := NewMetal(albedo)
	if err != nil {
		t.Fatalf("NewMetal failed: %v", err)
	}
	return m
}
