package core

import "math"

// Translation moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	m := Identity(4)
	m.set(0, 3, x)
	m.set(1, 3, y)
	m.set(2, 3, z)
	return m
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Matrix {
	m := Identity(4)
	m.set(0, 0, x)
	m.set(1, 1, y)
	m.set(2, 2, z)
	return m
}

// RotationX rotates about the x axis by radians (right-handed)
func RotationX(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	m := Identity(4)
	m.set(1, 1, cos)
	m.set(1, 2, -sin)
	m.set(2, 1, sin)
	m.set(2, 2, cos)
	return m
}

// RotationY rotates about the y axis by radians (right-handed)
func RotationY(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	m := Identity(4)
	m.set(0, 0, cos)
	m.set(0, 2, sin)
	m.set(2, 0, -sin)
	m.set(2, 2, cos)
	return m
}

// RotationZ rotates about the z axis by radians (right-handed)
func RotationZ(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	m := Identity(4)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	return m
}

// Shearing moves each axis in proportion to the other two.
// xy is "x in proportion to y", and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity(4)
	m.set(0, 1, xy)
	m.set(0, 2, xz)
	m.set(1, 0, yx)
	m.set(1, 2, yz)
	m.set(2, 0, zx)
	m.set(2, 1, zy)
	return m
}

// The fluent methods below left-multiply, so a chain reads in the order the
// transforms are applied: Identity(4).RotateX(a).Scale(s, s, s) rotates first.

// Translate applies a translation after m
func (m Matrix) Translate(x, y, z float64) Matrix {
	return Translation(x, y, z).Multiply(m)
}

// Scale applies a scaling after m
func (m Matrix) Scale(x, y, z float64) Matrix {
	return Scaling(x, y, z).Multiply(m)
}

// RotateX applies a rotation about x after m
func (m Matrix) RotateX(radians float64) Matrix {
	return RotationX(radians).Multiply(m)
}

// RotateY applies a rotation about y after m
func (m Matrix) RotateY(radians float64) Matrix {
	return RotationY(radians).Multiply(m)
}

// RotateZ applies a rotation about z after m
func (m Matrix) RotateZ(radians float64) Matrix {
	return RotationZ(radians).Multiply(m)
}

// Shear applies a shearing after m
func (m Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Shearing(xy, xz, yx, yz, zx, zy).Multiply(m)
}
