package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewFinalScene creates a 22x22 field of small random spheres around three large ones.
// Diffuse spheres move upward during the exposure, so the camera enables motion blur.
// The layout is fully determined by seed.
func NewFinalScene(seed int64) (*Scene, error) {
	random := rand.New(rand.NewSource(seed))
	world := geometry.NewGroup()

	add := func(center core.Vec3, radius float64, mat core.Scatterer, velocity core.Vec3) error {
		sphere, err := geometry.NewMovingSphere(center, radius, mat, velocity)
		if err != nil {
			return err
		}
		world.Add(sphere)
		return nil
	}

	glass, err := material.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}

	ground, err := material.NewLambertian(core.MustColor(0.5, 0.5, 0.5))
	if err != nil {
		return nil, err
	}
	if err := add(core.NewVec3(0, -1000, 0), 1000, ground, core.Vec3{}); err != nil {
		return nil, err
	}

	exclusion := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(exclusion).Length() <= 0.9 {
				continue
			}

			mat, velocity, err := randomMaterial(random, chooseMat, glass)
			if err != nil {
				return nil, err
			}
			if err := add(center, 0.2, mat, velocity); err != nil {
				return nil, err
			}
		}
	}

	brown, err := material.NewLambertian(core.MustColor(0.4, 0.2, 0.1))
	if err != nil {
		return nil, err
	}
	steel, err := material.NewMetal(core.MustColor(0.7, 0.6, 0.5))
	if err != nil {
		return nil, err
	}
	large := []struct {
		center core.Vec3
		mat    core.Scatterer
	}{
		{core.NewVec3(0, 1, 0), glass},
		{core.NewVec3(-4, 1, 0), brown},
		{core.NewVec3(4, 1, 0), steel},
	}
	for _, s := range large {
		if err := add(s.center, 1.0, s.mat, core.Vec3{}); err != nil {
			return nil, err
		}
	}

	camera := renderer.NewCameraBuilder().
		WithImageWidth(1200).
		WithSamplesPerPixel(500).
		WithVFov(20).
		WithLookFrom(core.NewVec3(13, 2, 3)).
		WithLookAt(core.NewVec3(0, 0, 0)).
		WithDefocusAngle(0.6).
		WithFocusDistance(10).
		WithMotionBlur(true).
		Config()

	return &Scene{
		Name:         "final",
		World:        world,
		CameraConfig: camera,
	}, nil
}

// randomMaterial picks a small sphere's material from chooseMat: 80% moving diffuse,
// 15% metal, the rest glass
func randomMaterial(random *rand.Rand, chooseMat float64, glass core.Scatterer) (core.Scatterer, core.Vec3, error) {
	switch {
	case chooseMat < 0.8:
		a, err := randomColor(random, 0, 1)
		if err != nil {
			return nil, core.Vec3{}, err
		}
		b, err := randomColor(random, 0, 1)
		if err != nil {
			return nil, core.Vec3{}, err
		}
		velocity := core.NewVec3(0, 0.5*random.Float64(), 0)
		diffuse, err := material.NewLambertian(a.MultiplyColor(b))
		if err != nil {
			return nil, core.Vec3{}, err
		}
		return diffuse, velocity, nil
	case chooseMat < 0.95:
		albedo, err := randomColor(random, 0.5, 1)
		if err != nil {
			return nil, core.Vec3{}, err
		}
		metal, err := material.NewMetal(albedo)
		if err != nil {
			return nil, core.Vec3{}, err
		}
		return metal, core.Vec3{}, nil
	}
	return glass, core.Vec3{}, nil
}

// randomColor draws each channel uniformly from [lo, hi)
func randomColor(random *rand.Rand, lo, hi float64) (core.Color, error) {
	span := hi - lo
	return core.NewColor(
		lo+span*random.Float64(),
		lo+span*random.Float64(),
		lo+span*random.Float64(),
	)
}
