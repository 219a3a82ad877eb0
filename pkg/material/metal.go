package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a perfect mirror tinted by its albedo
type Metal struct {
	Albedo core.Color // Metal color
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Color) (*Metal, error) {
	if err := validateAlbedo(albedo); err != nil {
		return nil, err
	}
	return &Metal{Albedo: albedo}, nil
}

// Scatter implements the Scatterer interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Reflect(hit.Normal)

	return core.ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, reflected, rayIn.Time),
		Attenuation: m.Albedo,
	}, true
}
