package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all parameters for camera setup
type CameraConfig struct {
	Width           int       // Image width in pixels
	AspectRatio     float64   // Width / height; determines the image height
	SamplesPerPixel int       // Independent samples averaged per pixel
	MaxDepth        int       // Maximum ray bounce depth
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera is looking at
	Up              core.Vec3 // Up direction (usually 0,1,0)
	DefocusAngle    float64   // Cone angle of rays through each pixel in degrees; 0 is a pinhole
	FocusDistance   float64   // Distance from LookFrom to the plane of perfect focus
	MotionBlur      bool      // Give each camera ray a random time in [0, 1)
}

// DefaultCameraConfig returns the default camera: a narrow pinhole looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:           500,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            20,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied.
// Zero values in override mean "keep base"; use CameraBuilder to set a field to zero.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != (core.Vec3{}) {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	if override.MotionBlur {
		result.MotionBlur = true
	}
	return result
}

// Validate checks the configuration and reports the first problem found
func (c CameraConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be > 0, got %d", core.ErrInvalidCamera, c.Width)
	case !(c.AspectRatio > 0):
		return fmt.Errorf("%w: aspect ratio must be > 0, got %g", core.ErrInvalidCamera, c.AspectRatio)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel must be > 0, got %d", core.ErrInvalidCamera, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must be >= 0, got %d", core.ErrInvalidCamera, c.MaxDepth)
	case !(c.VFov > 0 && c.VFov < 180):
		return fmt.Errorf("%w: vertical fov must be in (0, 180), got %g", core.ErrInvalidCamera, c.VFov)
	case !(c.FocusDistance > 0):
		return fmt.Errorf("%w: focus distance must be > 0, got %g", core.ErrInvalidCamera, c.FocusDistance)
	case c.DefocusAngle < 0:
		return fmt.Errorf("%w: defocus angle must be >= 0, got %g", core.ErrInvalidCamera, c.DefocusAngle)
	case c.LookFrom.Subtract(c.LookAt).NearZero():
		return fmt.Errorf("%w: look-from and look-at coincide", core.ErrInvalidCamera)
	case c.Up.Cross(c.LookFrom.Subtract(c.LookAt)).NearZero():
		return fmt.Errorf("%w: up vector is parallel to the view direction", core.ErrInvalidCamera)
	}
	return nil
}

// Camera generates rays for rendering. It is immutable once built and shared by all workers.
type Camera struct {
	config      CameraConfig
	imageHeight int
	center      core.Vec3
	pixel00     core.Vec3 // Location of pixel (0, 0)
	pixelDeltaU core.Vec3 // Offset to the pixel to the right
	pixelDeltaV core.Vec3 // Offset to the pixel below
	u, v, w     core.Vec3 // Camera frame basis vectors
	defocusU    core.Vec3 // Defocus disk horizontal radius
	defocusV    core.Vec3 // Defocus disk vertical radius
}

// NewCamera validates config and derives the viewport geometry
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	imageHeight := max(1, int(math.Round(float64(config.Width)/config.AspectRatio)))

	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(imageHeight)

	center := config.LookFrom
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport edges: u runs left to right, v runs top to bottom
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.Width))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180)

	return &Camera{
		config:      config,
		imageHeight: imageHeight,
		center:      center,
		pixel00:     pixel00,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		u:           u,
		v:           v,
		w:           w,
		defocusU:    u.Multiply(defocusRadius),
		defocusV:    v.Multiply(defocusRadius),
	}, nil
}

// GetRay returns a sample ray through pixel (i, j), jittered inside the pixel square.
// With a positive defocus angle the origin is drawn from the defocus disk.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler.Get2D())
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	var time float64
	if c.config.MotionBlur {
		time = sampler.Get1D()
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), time)
}

// defocusDiskSample returns a random point on the camera's defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return c.center.Add(c.defocusU.Multiply(p.X)).Add(c.defocusV.Multiply(p.Y))
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.config.Width }

// Height returns the derived image height in pixels
func (c *Camera) Height() int { return c.imageHeight }

// SamplesPerPixel returns the configured sample count
func (c *Camera) SamplesPerPixel() int { return c.config.SamplesPerPixel }

// MaxDepth returns the configured bounce budget
func (c *Camera) MaxDepth() int { return c.config.MaxDepth }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// Center returns the camera position
func (c *Camera) Center() core.Vec3 { return c.center }

// Basis returns the orthonormal camera frame (right, up, backward)
func (c *Camera) Basis() (u, v, w core.Vec3) { return c.u, c.v, c.w }

// PixelCenter returns the world-space center of pixel (i, j) on the focus plane
func (c *Camera) PixelCenter(i, j int) core.Vec3 {
	return c.pixel00.Add(c.pixelDeltaU.Multiply(float64(i))).Add(c.pixelDeltaV.Multiply(float64(j)))
}
