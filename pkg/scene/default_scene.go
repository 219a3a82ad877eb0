package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a diffuse sphere on a large ground sphere, viewed with the default camera
func NewDefaultScene() (*Scene, error) {
	gray, err := material.NewLambertian(core.MustColor(0.5, 0.5, 0.5))
	if err != nil {
		return nil, err
	}

	center, err := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray)
	if err != nil {
		return nil, err
	}
	ground, err := geometry.NewSphere(core.NewVec3(0, -100.5, -2), 100, gray)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Name:         "default",
		World:        geometry.NewGroup(center, ground),
		CameraConfig: renderer.DefaultCameraConfig(),
	}, nil
}
