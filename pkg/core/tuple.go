package core

import (
	"fmt"
	"math"
)

// Tuple is a homogeneous coordinate. W=1 marks a point and W=0 a vector.
type Tuple struct {
	X, Y, Z, W float64
}

var (
	// Origin is the point (0, 0, 0)
	Origin = Point(0, 0, 0)
	// ZeroVector is the vector (0, 0, 0)
	ZeroVector = Vector(0, 0, 0)
)

// NewTuple creates a tuple from all four components
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point creates a tuple with W=1
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a tuple with W=0
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether W is exactly 1
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether W is exactly 0
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the component-wise sum
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply scales every component by scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// MultiplyInt scales every component by an integer scalar
func (t Tuple) MultiplyInt(scalar int) Tuple {
	return t.Multiply(float64(scalar))
}

// Divide divides every component by scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// DivideInt divides every component by an integer scalar
func (t Tuple) DivideInt(scalar int) Tuple {
	return t.Divide(float64(scalar))
}

// Dot returns the sum of pairwise products over all four components
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of the xyz parts. The result is always a vector.
func (t Tuple) Cross(other Tuple) Tuple {
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Magnitude returns the Euclidean norm over all four components
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize divides the tuple by its magnitude.
// Callers must not pass a zero-length tuple.
func (t Tuple) Normalize() Tuple {
	return t.Divide(t.Magnitude())
}

// Equals compares component-wise within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return FloatEquals(t.X, other.X) &&
		FloatEquals(t.Y, other.Y) &&
		FloatEquals(t.Z, other.Z) &&
		FloatEquals(t.W, other.W)
}

// component returns X, Y, Z, W by index
func (t Tuple) component(i int) float64 {
	switch i {
	case 0:
		return t.X
	case 1:
		return t.Y
	case 2:
		return t.Z
	default:
		return t.W
	}
}

func (t Tuple) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}
