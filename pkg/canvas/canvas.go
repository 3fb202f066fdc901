package canvas

import (
	"errors"
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ErrOutOfBounds is returned when a pixel coordinate lies outside the canvas
var ErrOutOfBounds = errors.New("pixel out of bounds")

// Canvas is a width×height grid of colours stored row-major, black by default
type Canvas struct {
	Width  int
	Height int
	pixels []core.Colour
}

// New creates a black canvas. Negative dimensions are treated as zero.
func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Colour, width*height),
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// WritePixel sets the colour at (x, y)
func (c *Canvas) WritePixel(x, y int, colour core.Colour) error {
	if !c.inBounds(x, y) {
		return fmt.Errorf("write (%d, %d) on %dx%d canvas: %w", x, y, c.Width, c.Height, ErrOutOfBounds)
	}
	c.pixels[y*c.Width+x] = colour
	return nil
}

// PixelAt returns the colour at (x, y)
func (c *Canvas) PixelAt(x, y int) (core.Colour, error) {
	if !c.inBounds(x, y) {
		return core.Colour{}, fmt.Errorf("read (%d, %d) on %dx%d canvas: %w", x, y, c.Width, c.Height, ErrOutOfBounds)
	}
	return c.pixels[y*c.Width+x], nil
}

// Fill sets every pixel to colour
func (c *Canvas) Fill(colour core.Colour) {
	for i := range c.pixels {
		c.pixels[i] = colour
	}
}

// Blit copies src into this canvas with its first row placed at rowOffset.
// src must have the same width and fit entirely inside the canvas.
func (c *Canvas) Blit(src *Canvas, rowOffset int) error {
	if src.Width != c.Width {
		return fmt.Errorf("blit %d-wide band onto %d-wide canvas: %w", src.Width, c.Width, ErrOutOfBounds)
	}
	if rowOffset < 0 || rowOffset+src.Height > c.Height {
		return fmt.Errorf("blit rows %d..%d onto %d-row canvas: %w", rowOffset, rowOffset+src.Height, c.Height, ErrOutOfBounds)
	}
	copy(c.pixels[rowOffset*c.Width:], src.pixels)
	return nil
}
