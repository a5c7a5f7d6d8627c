// Package canvas holds a grid of colors and encodes it to image formats.
package canvas

import (
	"errors"
	"fmt"

	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// MaxDimension is the largest accepted width or height
const MaxDimension = 16384

// ErrInvalidDimensions is returned by New for zero, negative or oversized dimensions
var ErrInvalidDimensions = errors.New("invalid canvas dimensions")

// OutOfBoundsError is the panic value raised by pixel access outside the canvas
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("pixel (%d, %d) is outside the %dx%d canvas", e.X, e.Y, e.Width, e.Height)
}

// Canvas is a width x height grid of colors with the origin at the top-left.
// Pixels are stored row-major. Accessing a pixel outside the canvas panics
// with an *OutOfBoundsError; use InBounds to check first.
//
// A Canvas is not safe for concurrent use, except that goroutines may write
// disjoint rows at the same time.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// New creates a canvas with every pixel set to black
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d (each side must be in 1..%d)", ErrInvalidDimensions, width, height, MaxDimension)
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}, nil
}

// Width returns the width of the canvas
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas
func (c *Canvas) Height() int {
	return c.height
}

// InBounds reports whether (x, y) addresses a pixel of the canvas
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *Canvas) index(x, y int) int {
	if !c.InBounds(x, y) {
		panic(&OutOfBoundsError{X: x, Y: y, Width: c.width, Height: c.height})
	}
	return y*c.width + x
}

// WritePixel overwrites the pixel at (x, y)
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	c.pixels[c.index(x, y)] = color
}

// PixelAt returns the pixel at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[c.index(x, y)]
}

// Fill sets every pixel to color
func (c *Canvas) Fill(color core.Color) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

// Row returns a copy of row y
func (c *Canvas) Row(y int) []core.Color {
	start := c.index(0, y)
	row := make([]core.Color, c.width)
	copy(row, c.pixels[start:start+c.width])
	return row
}
