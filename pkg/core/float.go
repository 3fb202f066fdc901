package core

import "math"

// Epsilon is the tolerance used for every float comparison in the tracer
const Epsilon = 1e-5

// FloatEquals reports whether a and b differ by less than Epsilon
func FloatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Radians converts an angle in degrees to radians
func Radians(degrees float64) float64 {
	return degrees / 180.0 * math.Pi
}

// RadiansInt converts an integer angle in degrees to radians
func RadiansInt(degrees int) float64 {
	return Radians(float64(degrees))
}

// Degrees converts an angle in radians to degrees
func Degrees(radians float64) float64 {
	return radians / math.Pi * 180.0
}
