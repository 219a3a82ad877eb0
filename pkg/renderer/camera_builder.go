package renderer

import "github.com/df07/go-pathtracer/pkg/core"

// CameraBuilder sets camera options one at a time on top of DefaultCameraConfig
type CameraBuilder struct {
	config CameraConfig
}

// NewCameraBuilder starts from the default configuration
func NewCameraBuilder() *CameraBuilder {
	return &CameraBuilder{config: DefaultCameraConfig()}
}

// NewCameraBuilderFrom starts from an existing configuration
func NewCameraBuilderFrom(config CameraConfig) *CameraBuilder {
	return &CameraBuilder{config: config}
}

func (b *CameraBuilder) WithImageWidth(width int) *CameraBuilder {
	b.config.Width = width
	return b
}

func (b *CameraBuilder) WithAspectRatio(ratio float64) *CameraBuilder {
	b.config.AspectRatio = ratio
	return b
}

func (b *CameraBuilder) WithSamplesPerPixel(samples int) *CameraBuilder {
	b.config.SamplesPerPixel = samples
	return b
}

func (b *CameraBuilder) WithMaxDepth(depth int) *CameraBuilder {
	b.config.MaxDepth = depth
	return b
}

func (b *CameraBuilder) WithVFov(degrees float64) *CameraBuilder {
	b.config.VFov = degrees
	return b
}

func (b *CameraBuilder) WithLookFrom(p core.Vec3) *CameraBuilder {
	b.config.LookFrom = p
	return b
}

func (b *CameraBuilder) WithLookAt(p core.Vec3) *CameraBuilder {
	b.config.LookAt = p
	return b
}

func (b *CameraBuilder) WithUp(up core.Vec3) *CameraBuilder {
	b.config.Up = up
	return b
}

func (b *CameraBuilder) WithDefocusAngle(degrees float64) *CameraBuilder {
	b.config.DefocusAngle = degrees
	return b
}

func (b *CameraBuilder) WithFocusDistance(distance float64) *CameraBuilder {
	b.config.FocusDistance = distance
	return b
}

func (b *CameraBuilder) WithMotionBlur(enabled bool) *CameraBuilder {
	b.config.MotionBlur = enabled
	return b
}

// Config returns the configuration accumulated so far
func (b *CameraBuilder) Config() CameraConfig {
	return b.config
}

// Build validates the configuration and creates the camera
func (b *CameraBuilder) Build() (*Camera, error) {
	return NewCamera(b.config)
}
