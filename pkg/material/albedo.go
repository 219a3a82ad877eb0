package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// validateAlbedo rejects reflectance channels outside [0, 1] with core.ErrColorOutOfRange
func validateAlbedo(albedo core.Color) error {
	_, err := core.NewColor(albedo.R, albedo.G, albedo.B)
	return err
}
