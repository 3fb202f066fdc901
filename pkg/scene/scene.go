package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// Scene describes a single object viewed from an eye point through a square wall
// of pixels. Rays start at Eye and pass through the wall, which lies in the plane
// z = WallZ and spans WallSize world units on each side.
type Scene struct {
	Eye        core.Tuple
	WallZ      float64
	WallSize   float64
	Object     geometry.Object
	HitColour  core.Colour
	Background core.Colour
}

// WithObject returns a copy of the scene with a different object
func (s Scene) WithObject(object geometry.Object) Scene {
	s.Object = object
	return s
}

// WithTransform returns a copy of the scene with the object's pose replaced
func (s Scene) WithTransform(transform core.Matrix) Scene {
	s.Object = s.Object.WithTransform(transform)
	return s
}
