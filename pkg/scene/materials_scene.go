package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewMaterialsScene creates one sphere of each material side by side. The glass sphere holds
// an air bubble (index 1/1.5) which makes it render as a hollow shell.
func NewMaterialsScene() (*Scene, error) {
	ground, err := material.NewLambertian(core.MustColor(0.8, 0.8, 0.0))
	if err != nil {
		return nil, err
	}
	center, err := material.NewLambertian(core.MustColor(0.1, 0.2, 0.5))
	if err != nil {
		return nil, err
	}
	metal, err := material.NewMetal(core.MustColor(0.8, 0.6, 0.2))
	if err != nil {
		return nil, err
	}
	glass, err := material.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}
	bubble, err := material.NewDielectric(1.0 / 1.5)
	if err != nil {
		return nil, err
	}

	world := geometry.NewGroup()
	spheres := []struct {
		center core.Vec3
		radius float64
		mat    core.Scatterer
	}{
		{core.NewVec3(0, -100.5, -1), 100, ground},
		{core.NewVec3(0, 0, -1.2), 0.5, center},
		{core.NewVec3(-1, 0, -1), 0.5, glass},
		{core.NewVec3(-1, 0, -1), 0.4, bubble},
		{core.NewVec3(1, 0, -1), 0.5, metal},
	}
	for _, s := range spheres {
		sphere, err := geometry.NewSphere(s.center, s.radius, s.mat)
		if err != nil {
			return nil, err
		}
		world.Add(sphere)
	}

	camera := renderer.NewCameraBuilder().
		WithImageWidth(400).
		WithVFov(20).
		WithLookFrom(core.NewVec3(-2, 2, 1)).
		WithLookAt(core.NewVec3(0, 0, -1)).
		WithDefocusAngle(10).
		WithFocusDistance(3.4).
		Config()

	return &Scene{
		Name:         "materials",
		World:        world,
		CameraConfig: camera,
	}, nil
}
