package core

import (
	"fmt"
	"math"
)

// unitIntensity is the displayable channel range
var unitIntensity = Interval{Min: 0, Max: 1}

// Color is a linear RGB triple. Arithmetic is unclamped; values are only clamped when
// quantized to bytes.
type Color struct {
	R, G, B float64
}

// Black and White are the common terminal and identity colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a color whose channels must all lie in [0, 1]
func NewColor(r, g, b float64) (Color, error) {
	if !unitIntensity.Contains(r) || !unitIntensity.Contains(g) || !unitIntensity.Contains(b) {
		return Color{}, fmt.Errorf("%w: (%g, %g, %g)", ErrColorOutOfRange, r, g, b)
	}
	return Color{R: r, G: g, B: b}, nil
}

// MustColor is NewColor for literals known to be valid; it panics otherwise
func MustColor(r, g, b float64) Color {
	c, err := NewColor(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// Add returns the channel-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every channel
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the channel-wise product
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// ToBytes clamps each channel to [0,1], applies 1/gamma encoding and truncates value*255.
// A gamma of 1 leaves the values linear. Non-positive gammas are invalid and also write linear values.
func (c Color) ToBytes(gamma float64) (r, g, b uint8) {
	return channelToByte(c.R, gamma), channelToByte(c.G, gamma), channelToByte(c.B, gamma)
}

func channelToByte(v, gamma float64) uint8 {
	if math.IsNaN(v) {
		v = 0
	}
	v = unitIntensity.Clamp(v)
	if gamma > 0 && gamma != 1 && v > 0 {
		v = math.Pow(v, 1.0/gamma)
	}
	return uint8(v * 255)
}
