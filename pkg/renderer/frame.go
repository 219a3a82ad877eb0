package renderer

import "github.com/df07/go-pathtracer/pkg/core"

// Frame is the finished pixel grid in linear color, stored row-major top to bottom
type Frame struct {
	width  int
	height int
	pixels []core.Color
}

// NewFrame allocates a black frame of the given size
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) core.Color {
	return f.pixels[y*f.width+x]
}

// Set stores the color of pixel (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	f.pixels[y*f.width+x] = c
}

// Row returns the backing slice for row y. Rows never overlap, so distinct
// workers may fill distinct rows concurrently.
func (f *Frame) Row(y int) []core.Color {
	start := y * f.width
	return f.pixels[start : start+f.width : start+f.width]
}
