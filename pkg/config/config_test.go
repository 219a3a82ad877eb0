package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Render.Scene != "default" {
		t.Errorf("Expected default scene, got %q", config.Render.Scene)
	}
	if config.Render.Gamma != 1.0 {
		t.Errorf("Expected linear gamma, got %f", config.Render.Gamma)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestParseConfig_OverridesDefaults(t *testing.T) {
	data := []byte(`
render:
  scene: materials
  output: out/materials.ppm
  workers: 4
camera:
  width: 320
  samples_per_pixel: 16
  max_depth: 0
  defocus_angle: 0
  look_from: [-2, 2, 1]
`)

	config, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if config.Render.Scene != "materials" || config.Render.Workers != 4 {
		t.Errorf("Unexpected render section: %+v", config.Render)
	}
	// Unset keys keep their defaults
	if config.Render.Seed != 42 || config.Render.Gamma != 1.0 {
		t.Errorf("Expected default seed and gamma, got %d and %f", config.Render.Seed, config.Render.Gamma)
	}

	base := renderer.DefaultCameraConfig()
	base.DefocusAngle = 10
	camera, err := config.Camera.Apply(base)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if camera.Width != 320 || camera.SamplesPerPixel != 16 {
		t.Errorf("Expected 320 wide at 16 spp, got %d at %d", camera.Width, camera.SamplesPerPixel)
	}
	if camera.MaxDepth != 0 {
		t.Errorf("Expected explicit zero depth, got %d", camera.MaxDepth)
	}
	if camera.DefocusAngle != 0 {
		t.Errorf("Expected explicit zero defocus to override the base, got %f", camera.DefocusAngle)
	}
	if camera.LookFrom != core.NewVec3(-2, 2, 1) {
		t.Errorf("Expected look-from (-2,2,1), got %v", camera.LookFrom)
	}
	if camera.VFov != base.VFov || camera.FocusDistance != base.FocusDistance {
		t.Errorf("Expected unset fields to keep the base, got vfov %f focus %f", camera.VFov, camera.FocusDistance)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative workers", "render:\n  workers: -1\n"},
		{"zero gamma", "render:\n  gamma: 0\n"},
		{"negative gamma", "render:\n  gamma: -2\n"},
		{"unknown format", "render:\n  format: gif\n"},
		{"zero width", "camera:\n  width: 0\n"},
		{"wide fov", "camera:\n  vfov: 180\n"},
		{"short vector", "camera:\n  look_at: [1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if _, err := ParseConfig([]byte("render:\n  sceen: typo\n")); err == nil {
		t.Error("Expected unknown keys to be rejected")
	}
	if _, err := ParseConfig([]byte("render: [")); err == nil {
		t.Error("Expected malformed YAML to be rejected")
	}
}

func TestParseConfig_GammaBelowOne(t *testing.T) {
	config, err := ParseConfig([]byte("render:\n  gamma: 0.5\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	half := core.MustColor(0.5, 0.5, 0.5)
	r, _, _ := half.ToBytes(config.Render.Gamma)
	linear, _, _ := half.ToBytes(1)
	if r != 63 {
		t.Errorf("Expected gamma 0.5 to encode 0.5 as 63, got %d", r)
	}
	if r >= linear {
		t.Errorf("Expected gamma 0.5 output %d below linear output %d", r, linear)
	}
}

func TestLoadAndSaveConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.yaml")

	width := 64
	config := DefaultConfig()
	config.Render.Scene = "final"
	config.Camera.Width = &width
	config.Camera.LookAt = Vector{0, 0, -2}

	if err := SaveConfig(config, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Render.Scene != "final" {
		t.Errorf("Expected scene final, got %q", loaded.Render.Scene)
	}
	if loaded.Camera.Width == nil || *loaded.Camera.Width != 64 {
		t.Errorf("Expected width 64, got %v", loaded.Camera.Width)
	}
	if loaded.Camera.SamplesPerPixel != nil {
		t.Errorf("Expected unset samples to stay unset, got %v", *loaded.Camera.SamplesPerPixel)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}
