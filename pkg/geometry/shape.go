package geometry

import "github.com/df07/go-sphere-tracer/pkg/core"

// Shape is implemented by every kind of scene object.
// Both methods work in object space: the canonical shape before its pose transform.
type Shape interface {
	// LocalIntersect returns the ray parameters where the ray meets the shape, ascending
	LocalIntersect(ray core.Ray) []float64
	// LocalNormalAt returns the (unnormalized) surface normal at an object-space point
	LocalNormalAt(point core.Tuple) core.Tuple
	// Kind names the shape variant
	Kind() string

	equals(other Shape) bool
}
