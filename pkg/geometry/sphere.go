package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape, optionally moving with a constant velocity
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Scatterer
	Velocity core.Vec3 // Displacement per unit of ray time
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, material core.Scatterer) (*Sphere, error) {
	return NewMovingSphere(center, radius, material, core.Vec3{})
}

// NewMovingSphere creates a sphere whose center at ray time t is center + t*velocity
func NewMovingSphere(center core.Vec3, radius float64, material core.Scatterer, velocity core.Vec3) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: got %g", core.ErrInvalidRadius, radius)
	}
	if material == nil {
		return nil, fmt.Errorf("sphere at %v: %w", center, core.ErrNilMaterial)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
		Velocity: velocity,
	}, nil
}

// CenterAt returns the effective center at the given ray time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.Add(s.Velocity.Multiply(time))
}

// Hit tests if a ray intersects with the sphere strictly inside rayT
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	center := s.CenterAt(ray.Time)

	// Vector from ray origin to sphere center
	oc := center.Subtract(ray.Origin)

	// Quadratic with b = -2h: at² - 2ht + c = 0
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
