package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// LoadYAMLScene loads a scene file and builds it
func LoadYAMLScene(filename string) (*Scene, error) {
	desc, err := loaders.LoadSceneFile(filename)
	if err != nil {
		return nil, err
	}
	return NewSceneFromDescription(desc)
}

// NewSceneFromDescription builds the materials and spheres of a parsed scene file.
// Each named material is created once and shared by every sphere using it.
func NewSceneFromDescription(desc *loaders.SceneDescription) (*Scene, error) {
	materials := make(map[string]core.Scatterer, len(desc.Materials))
	for _, name := range desc.MaterialNames() {
		mat, err := createMaterial(desc.Materials[name])
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	world := geometry.NewGroup()
	for i, s := range desc.Spheres {
		center, err := s.Center.Vec3()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		var velocity core.Vec3
		if s.Velocity != nil {
			if velocity, err = s.Velocity.Vec3(); err != nil {
				return nil, fmt.Errorf("sphere %d: %w", i, err)
			}
		}

		mat, ok := materials[s.Material]
		if !ok {
			return nil, fmt.Errorf("%w: sphere %d refers to unknown material %q", loaders.ErrInvalidScene, i, s.Material)
		}
		sphere, err := geometry.NewMovingSphere(center, s.Radius, mat, velocity)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		world.Add(sphere)
	}

	cameraConfig, err := desc.Camera.Apply(renderer.DefaultCameraConfig())
	if err != nil {
		return nil, err
	}

	return &Scene{
		Name:         desc.Name,
		World:        world,
		CameraConfig: cameraConfig,
	}, nil
}

// createMaterial converts a material description into a scatterer
func createMaterial(desc loaders.MaterialDescription) (core.Scatterer, error) {
	switch desc.Type {
	case loaders.MaterialLambertian, loaders.MaterialMetal:
		albedo, err := desc.Albedo.Vec3()
		if err != nil {
			return nil, err
		}
		color, err := core.NewColor(albedo.X, albedo.Y, albedo.Z)
		if err != nil {
			return nil, err
		}
		if desc.Type == loaders.MaterialMetal {
			metal, err := material.NewMetal(color)
			if err != nil {
				return nil, err
			}
			return metal, nil
		}
		lambertian, err := material.NewLambertian(color)
		if err != nil {
			return nil, err
		}
		return lambertian, nil
	case loaders.MaterialDielectric:
		dielectric, err := material.NewDielectric(desc.RefractionIndex)
		if err != nil {
			return nil, err
		}
		return dielectric, nil
	}
	return nil, fmt.Errorf("%w: unknown material type %q", loaders.ErrInvalidScene, desc.Type)
}
