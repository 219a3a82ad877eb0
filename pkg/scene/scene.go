package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned when a scene name matches neither a built-in scene nor a YAML file
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.Group       // Objects in the scene, read-only once built
	CameraConfig renderer.CameraConfig // Camera the scene was composed for
}

// NewCamera builds the scene's camera with override applied on top.
// Zero fields in override keep the scene's values.
func (s *Scene) NewCamera(override renderer.CameraConfig) (*renderer.Camera, error) {
	return renderer.NewCamera(renderer.MergeCameraConfig(s.CameraConfig, override))
}

// builtinScene describes a scene constructed in code
type builtinScene struct {
	info  SceneInfo
	build func(seed int64) (*Scene, error)
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Diffuse sphere resting on a large ground sphere",
		},
		build: func(int64) (*Scene, error) { return NewDefaultScene() },
	},
	{
		info: SceneInfo{
			ID:          "materials",
			Name:        "Materials",
			Description: "Diffuse, hollow glass and metal spheres with depth of field",
		},
		build: func(int64) (*Scene, error) { return NewMaterialsScene() },
	},
	{
		info: SceneInfo{
			ID:          "final",
			Name:        "Random Spheres",
			Description: "Field of random small spheres around three large ones, with motion blur",
		},
		build: NewFinalScene,
	},
}

// NewBuiltinScene constructs a built-in scene by ID. Seed only affects scenes with random layout.
func NewBuiltinScene(id string, seed int64) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.build(seed)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// Load resolves name to a YAML scene file when it has a .yaml or .yml extension and to a
// built-in scene otherwise
func Load(name string, seed int64) (*Scene, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return LoadYAMLScene(name)
	}
	return NewBuiltinScene(name, seed)
}
