package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrInvalidConfig is returned by Validate and LoadConfig for unusable values
var ErrInvalidConfig = errors.New("invalid config")

// Config represents a render configuration file
type Config struct {
	Render RenderConfig  `yaml:"render"`
	Camera CameraSection `yaml:"camera"`
}

// RenderConfig contains settings that do not change the scene itself
type RenderConfig struct {
	Scene   string  `yaml:"scene"`   // Built-in scene name or path to a YAML scene file
	Output  string  `yaml:"output"`  // Output file; empty means output/<scene>/render_<timestamp>.<format>
	Format  string  `yaml:"format"`  // ppm, png, bmp or tiff; empty means infer from Output
	Workers int     `yaml:"workers"` // 0 = auto-detect
	Seed    int64   `yaml:"seed"`
	Gamma   float64 `yaml:"gamma"` // 1 = linear output
}

// Vector is a 3 element [x, y, z] list in YAML
type Vector []float64

// Vec3 converts v, which must have exactly three elements
func (v Vector) Vec3() (core.Vec3, error) {
	if len(v) != 3 {
		return core.Vec3{}, fmt.Errorf("%w: vector needs 3 components, got %d", ErrInvalidConfig, len(v))
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

// CameraSection holds optional camera overrides. Nil fields keep the value they are applied to,
// so unlike MergeCameraConfig a field can be set to zero explicitly.
type CameraSection struct {
	Width           *int     `yaml:"width,omitempty"`
	AspectRatio     *float64 `yaml:"aspect_ratio,omitempty"`
	SamplesPerPixel *int     `yaml:"samples_per_pixel,omitempty"`
	MaxDepth        *int     `yaml:"max_depth,omitempty"`
	VFov            *float64 `yaml:"vfov,omitempty"`
	LookFrom        Vector   `yaml:"look_from,omitempty"`
	LookAt          Vector   `yaml:"look_at,omitempty"`
	Up              Vector   `yaml:"up,omitempty"`
	DefocusAngle    *float64 `yaml:"defocus_angle,omitempty"`
	FocusDistance   *float64 `yaml:"focus_distance,omitempty"`
	MotionBlur      *bool    `yaml:"motion_blur,omitempty"`
}

// Apply returns base with every field set in the section overridden
func (s CameraSection) Apply(base renderer.CameraConfig) (renderer.CameraConfig, error) {
	b := renderer.NewCameraBuilderFrom(base)
	if s.Width != nil {
		b.WithImageWidth(*s.Width)
	}
	if s.AspectRatio != nil {
		b.WithAspectRatio(*s.AspectRatio)
	}
	if s.SamplesPerPixel != nil {
		b.WithSamplesPerPixel(*s.SamplesPerPixel)
	}
	if s.MaxDepth != nil {
		b.WithMaxDepth(*s.MaxDepth)
	}
	if s.VFov != nil {
		b.WithVFov(*s.VFov)
	}
	if s.DefocusAngle != nil {
		b.WithDefocusAngle(*s.DefocusAngle)
	}
	if s.FocusDistance != nil {
		b.WithFocusDistance(*s.FocusDistance)
	}
	if s.MotionBlur != nil {
		b.WithMotionBlur(*s.MotionBlur)
	}

	vectors := []struct {
		name  string
		value Vector
		set   func(core.Vec3) *renderer.CameraBuilder
	}{
		{"look_from", s.LookFrom, b.WithLookFrom},
		{"look_at", s.LookAt, b.WithLookAt},
		{"up", s.Up, b.WithUp},
	}
	for _, v := range vectors {
		if v.value == nil {
			continue
		}
		vec, err := v.value.Vec3()
		if err != nil {
			return base, fmt.Errorf("camera %s: %w", v.name, err)
		}
		v.set(vec)
	}

	return b.Config(), nil
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Scene:   "default",
			Output:  "",
			Format:  "",
			Workers: 0,
			Seed:    42,
			Gamma:   1.0,
		},
	}
}

// LoadConfig reads a YAML file over the defaults and validates the result.
// Unknown keys are rejected.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML config data over the defaults and validates the result
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// Validate checks render settings and the camera overrides that are set. The full camera
// is validated again once the overrides are applied to a scene's camera.
func (c *Config) Validate() error {
	if c.Render.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Render.Workers)
	}
	if !(c.Render.Gamma > 0) {
		return fmt.Errorf("%w: gamma must be > 0, got %g", ErrInvalidConfig, c.Render.Gamma)
	}
	if c.Render.Format != "" {
		if _, err := output.ParseFormat(c.Render.Format); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return c.Camera.validate()
}

func (s CameraSection) validate() error {
	checks := []struct {
		set  bool
		ok   bool
		what string
	}{
		{s.Width != nil, s.Width != nil && *s.Width > 0, "width must be > 0"},
		{s.AspectRatio != nil, s.AspectRatio != nil && *s.AspectRatio > 0, "aspect_ratio must be > 0"},
		{s.SamplesPerPixel != nil, s.SamplesPerPixel != nil && *s.SamplesPerPixel > 0, "samples_per_pixel must be > 0"},
		{s.MaxDepth != nil, s.MaxDepth != nil && *s.MaxDepth >= 0, "max_depth must be >= 0"},
		{s.VFov != nil, s.VFov != nil && *s.VFov > 0 && *s.VFov < 180, "vfov must be in (0, 180)"},
		{s.DefocusAngle != nil, s.DefocusAngle != nil && *s.DefocusAngle >= 0, "defocus_angle must be >= 0"},
		{s.FocusDistance != nil, s.FocusDistance != nil && *s.FocusDistance > 0, "focus_distance must be > 0"},
	}
	for _, c := range checks {
		if c.set && !c.ok {
			return fmt.Errorf("%w: camera %s", ErrInvalidConfig, c.what)
		}
	}

	for name, v := range map[string]Vector{"look_from": s.LookFrom, "look_at": s.LookAt, "up": s.Up} {
		if v == nil {
			continue
		}
		if _, err := v.Vec3(); err != nil {
			return fmt.Errorf("camera %s: %w", name, err)
		}
	}
	return nil
}
