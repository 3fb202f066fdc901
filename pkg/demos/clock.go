package demos

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/canvas"
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ClockHours is the number of marks drawn around the clock face
const ClockHours = 12

// ClockPositions returns the canvas position of each hour mark on a size×size canvas.
// Twelve o'clock is at the top and the hours run clockwise.
func ClockPositions(size int) [][2]int {
	radius := float64(size) * 3 / 8
	centre := float64(size) / 2
	twelve := core.Point(0, 1, 0)

	positions := make([][2]int, ClockHours)
	for hour := 0; hour < ClockHours; hour++ {
		// Canvas y grows downwards, so a negative z rotation reads clockwise on screen
		transform := core.Identity(4).
			RotateZ(-float64(hour) * 2 * math.Pi / ClockHours).
			Scale(radius, radius, 0).
			Translate(centre, centre, 0)
		p := transform.MultiplyTuple(twelve)
		positions[hour] = [2]int{int(math.Round(p.X)), size - int(math.Round(p.Y))}
	}
	return positions
}

// RenderClock draws the twelve hour marks in white on a black size×size canvas
func RenderClock(size int) (*canvas.Canvas, error) {
	c := canvas.New(size, size)
	for _, p := range ClockPositions(size) {
		if err := c.WritePixel(p[0], p[1], core.White); err != nil {
			return nil, err
		}
	}
	return c, nil
}
