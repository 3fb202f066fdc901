package renderer

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// Camera maps canvas pixels to rays from the eye through the wall
type Camera struct {
	eye       core.Tuple
	wallZ     float64
	pixelSize float64
	half      float64
}

// NewCamera creates a camera for a canvasPixels×canvasPixels canvas
func NewCamera(s scene.Scene, canvasPixels int) *Camera {
	return &Camera{
		eye:       s.Eye,
		wallZ:     s.WallZ,
		pixelSize: s.WallSize / float64(canvasPixels),
		half:      s.WallSize / 2,
	}
}

// WallPoint returns the world-space point on the wall for pixel (x, y).
// y grows downwards on the canvas and upwards in the world.
func (c *Camera) WallPoint(x, y int) core.Tuple {
	worldX := -c.half + c.pixelSize*float64(x)
	worldY := c.half - c.pixelSize*float64(y)
	return core.Point(worldX, worldY, c.wallZ)
}

// GetRay returns the ray from the eye through pixel (x, y)
func (c *Camera) GetRay(x, y int) core.Ray {
	direction := c.WallPoint(x, y).Subtract(c.eye).Normalize()
	return core.NewRay(c.eye, direction)
}
