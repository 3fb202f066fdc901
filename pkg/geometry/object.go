package geometry

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Object is a shape placed in the world by a pose transform.
// The transform maps object space into world space and must be invertible
// for intersection and normal computation.
type Object struct {
	Shape     Shape
	Transform core.Matrix
}

// NewObject places shape in the world with the identity pose
func NewObject(shape Shape) Object {
	return Object{Shape: shape, Transform: core.Identity(4)}
}

// NewSphere returns the canonical unit sphere with the identity pose
func NewSphere() Object {
	return NewObject(UnitSphere())
}

// WithTransform returns a copy of the object with a new pose transform
func (o Object) WithTransform(transform core.Matrix) Object {
	return Object{Shape: o.Shape, Transform: transform}
}

// Equals compares the shape and the pose within tolerance
func (o Object) Equals(other Object) bool {
	if o.Shape == nil || other.Shape == nil {
		return o.Shape == nil && other.Shape == nil && o.Transform.Equals(other.Transform)
	}
	return o.Shape.equals(other.Shape) && o.Transform.Equals(other.Transform)
}

// inverse returns the inverse pose, wrapping ErrNotInvertible with the shape kind
func (o Object) inverse() (core.Matrix, error) {
	inv, err := o.Transform.Inverse()
	if err != nil {
		return core.Matrix{}, fmt.Errorf("%s pose transform: %w", o.Shape.Kind(), err)
	}
	return inv, nil
}

// NormalAt returns the unit world-space normal at a world-space point on the surface
func (o Object) NormalAt(worldPoint core.Tuple) (core.Tuple, error) {
	inv, err := o.inverse()
	if err != nil {
		return core.Tuple{}, err
	}

	objectPoint := inv.MultiplyTuple(worldPoint)
	objectNormal := o.Shape.LocalNormalAt(objectPoint)

	// The inverse transpose keeps the normal perpendicular under non-uniform scaling
	worldNormal := inv.Transpose().MultiplyTuple(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize(), nil
}

// Intersect returns every intersection of ray with the object, ascending by time
func (o Object) Intersect(ray core.Ray) (Intersections, error) {
	inv, err := o.inverse()
	if err != nil {
		return nil, err
	}

	times := o.Shape.LocalIntersect(ray.Transform(inv))
	if len(times) == 0 {
		return nil, nil
	}

	xs := make([]Intersection, len(times))
	for i, t := range times {
		xs[i] = NewIntersection(t, o)
	}
	return NewIntersections(xs...), nil
}

// Intersect is shorthand for object.Intersect(ray)
func Intersect(ray core.Ray, object Object) (Intersections, error) {
	return object.Intersect(ray)
}
