package core

import "errors"

var (
	ErrColorOutOfRange        = errors.New("color channel outside [0, 1]")
	ErrInvalidRadius          = errors.New("sphere radius must be positive")
	ErrNilMaterial            = errors.New("material is required")
	ErrInvalidRefractionIndex = errors.New("refraction index must be positive")
	ErrInvalidCamera          = errors.New("invalid camera configuration")
)
