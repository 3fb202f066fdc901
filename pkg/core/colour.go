package core

import "fmt"

// Colour is an RGB triple. Channels are nominally in [0,1] but are not clamped
// until the colour is exported.
type Colour struct {
	Red, Green, Blue float64
}

var (
	Black = NewColour(0, 0, 0)
	White = NewColour(1, 1, 1)
	Red   = NewColour(1, 0, 0)
)

// NewColour creates a new colour
func NewColour(red, green, blue float64) Colour {
	return Colour{Red: red, Green: green, Blue: blue}
}

// Add returns the channel-wise sum
func (c Colour) Add(other Colour) Colour {
	return Colour{c.Red + other.Red, c.Green + other.Green, c.Blue + other.Blue}
}

// Subtract returns the channel-wise difference
func (c Colour) Subtract(other Colour) Colour {
	return Colour{c.Red - other.Red, c.Green - other.Green, c.Blue - other.Blue}
}

// Multiply scales every channel by scalar
func (c Colour) Multiply(scalar float64) Colour {
	return Colour{c.Red * scalar, c.Green * scalar, c.Blue * scalar}
}

// MultiplyInt scales every channel by an integer scalar
func (c Colour) MultiplyInt(scalar int) Colour {
	return c.Multiply(float64(scalar))
}

// Hadamard returns the channel-wise product of two colours
func (c Colour) Hadamard(other Colour) Colour {
	return Colour{c.Red * other.Red, c.Green * other.Green, c.Blue * other.Blue}
}

// Equals compares channel-wise within Epsilon
func (c Colour) Equals(other Colour) bool {
	return FloatEquals(c.Red, other.Red) &&
		FloatEquals(c.Green, other.Green) &&
		FloatEquals(c.Blue, other.Blue)
}

func (c Colour) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.Red, c.Green, c.Blue)
}
