package core

import (
	"math"
	"testing"
)

func TestSampleSquare_Range(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		offset := SampleSquare(sampler.Get2D())
		if offset.X < -0.5 || offset.X >= 0.5 || offset.Y < -0.5 || offset.Y >= 0.5 || offset.Z != 0 {
			t.Fatalf("Offset outside [-0.5,0.5)²: %v", offset)
		}
	}
}

func TestRandomUnitVector_IsUnit(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
	}
}

func TestRandomOnHemisphere_SameSideAsNormal(t *testing.T) {
	sampler := NewSeededSampler(11)
	normal := NewVec3(0, 0, 1)
	for i := 0; i < 1000; i++ {
		if v := RandomOnHemisphere(normal, sampler); v.Dot(normal) < 0 {
			t.Fatalf("Sample %v is below the hemisphere", v)
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 || p.X*p.X+p.Y*p.Y > 1+1e-12 {
			t.Fatalf("Point %v outside unit disk", p)
		}
	}

	if p := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); !p.Equals(Vec3{}) {
		t.Errorf("Center sample should map to origin, got %v", p)
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Samplers with the same seed diverged")
		}
	}
}
