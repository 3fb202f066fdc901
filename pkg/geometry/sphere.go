package geometry

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Sphere is a sphere in object space. The canonical sphere has radius 1 at the origin;
// everything else is expressed through the owning Object's transform.
type Sphere struct {
	Position core.Tuple
	Radius   float64
}

// UnitSphere returns the canonical sphere
func UnitSphere() Sphere {
	return Sphere{Position: core.Origin, Radius: 1}
}

// Kind implements Shape
func (s Sphere) Kind() string {
	return "sphere"
}

// LocalIntersect solves |origin + t*dir - position|² = radius² for t
func (s Sphere) LocalIntersect(ray core.Ray) []float64 {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Position)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []float64{t1, t2}
}

// LocalNormalAt points from the center through the surface point
func (s Sphere) LocalNormalAt(point core.Tuple) core.Tuple {
	return point.Subtract(s.Position)
}

func (s Sphere) equals(other Shape) bool {
	o, ok := other.(Sphere)
	return ok && s.Position.Equals(o.Position) && core.FloatEquals(s.Radius, o.Radius)
}
