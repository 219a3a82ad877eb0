package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-pathtracer/pkg/config"
)

// ErrInvalidScene is returned for scene files that parse but cannot describe a scene
var ErrInvalidScene = errors.New("invalid scene")

// Material types recognized in scene files
const (
	MaterialLambertian = "lambertian"
	MaterialMetal      = "metal"
	MaterialDielectric = "dielectric"
)

// SceneDescription is the parsed content of a YAML scene file
type SceneDescription struct {
	Name      string                         `yaml:"name"`
	Camera    config.CameraSection           `yaml:"camera"`
	Materials map[string]MaterialDescription `yaml:"materials"`
	Spheres   []SphereDescription            `yaml:"spheres"`
}

// MaterialDescription describes one named material
type MaterialDescription struct {
	Type            string        `yaml:"type"`
	Albedo          config.Vector `yaml:"albedo,omitempty"`           // lambertian, metal
	RefractionIndex float64       `yaml:"refraction_index,omitempty"` // dielectric
}

// SphereDescription describes one sphere referring to a named material
type SphereDescription struct {
	Center   config.Vector `yaml:"center"`
	Radius   float64       `yaml:"radius"`
	Material string        `yaml:"material"`
	Velocity config.Vector `yaml:"velocity,omitempty"`
}

// ParseScene parses YAML scene content from an io.Reader and checks its references
func ParseScene(reader io.Reader) (*SceneDescription, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	var desc SceneDescription
	if err := yaml.UnmarshalStrict(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := desc.validate(); err != nil {
		return nil, err
	}
	return &desc, nil
}

// LoadSceneFile loads and parses a YAML scene file
func LoadSceneFile(filename string) (*SceneDescription, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	desc, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if desc.Name == "" {
		desc.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return desc, nil
}

// MaterialNames returns the material names in sorted order
func (d *SceneDescription) MaterialNames() []string {
	names := make([]string, 0, len(d.Materials))
	for name := range d.Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validate checks structure only; numeric ranges are checked by the constructors
func (d *SceneDescription) validate() error {
	if len(d.Spheres) == 0 {
		return fmt.Errorf("%w: no spheres", ErrInvalidScene)
	}

	for _, name := range d.MaterialNames() {
		m := d.Materials[name]
		switch m.Type {
		case MaterialLambertian, MaterialMetal:
			if len(m.Albedo) != 3 {
				return fmt.Errorf("%w: material %q needs a 3 component albedo", ErrInvalidScene, name)
			}
		case MaterialDielectric:
		default:
			return fmt.Errorf("%w: material %q has unknown type %q", ErrInvalidScene, name, m.Type)
		}
	}

	for i, s := range d.Spheres {
		if len(s.Center) != 3 {
			return fmt.Errorf("%w: sphere %d needs a 3 component center", ErrInvalidScene, i)
		}
		if s.Velocity != nil && len(s.Velocity) != 3 {
			return fmt.Errorf("%w: sphere %d needs a 3 component velocity", ErrInvalidScene, i)
		}
		if _, ok := d.Materials[s.Material]; !ok {
			return fmt.Errorf("%w: sphere %d refers to unknown material %q", ErrInvalidScene, i, s.Material)
		}
	}
	return nil
}

// validateFilePath rejects paths that cannot be scene files
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)
	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("invalid file type: only .yaml scene files are allowed")
	}

	return nil
}
