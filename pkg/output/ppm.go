package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ColorGrid is a width x height grid of linear colors, addressed with (0, 0) at the top left
type ColorGrid interface {
	Width() int
	Height() int
	At(x, y int) core.Color
}

// WritePPM writes grid as an ASCII "P3" pixel map: a three line header followed by
// one "r g b" line per pixel, row-major from the top row.
func WritePPM(w io.Writer, grid ColorGrid, gamma float64) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", grid.Width(), grid.Height()); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			r, g, b := grid.At(x, y).ToBytes(gamma)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("failed to write pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}
