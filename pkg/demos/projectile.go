package demos

import (
	"errors"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/canvas"
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Projectile is a point moving with a velocity vector
type Projectile struct {
	Position core.Tuple
	Velocity core.Tuple
}

// Environment applies gravity and wind to projectiles each tick
type Environment struct {
	Gravity core.Tuple
	Wind    core.Tuple
}

// Tick advances the projectile by one step
func (e Environment) Tick(p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(e.Gravity).Add(e.Wind),
	}
}

// DefaultProjectile is launched from (0, 1, 0) up and to the right
func DefaultProjectile() Projectile {
	return Projectile{
		Position: core.Point(0, 1, 0),
		Velocity: core.Vector(1, 1.8, 0).Normalize().Multiply(11.25),
	}
}

// DefaultEnvironment has light gravity and a slight headwind
func DefaultEnvironment() Environment {
	return Environment{
		Gravity: core.Vector(0, -0.1, 0),
		Wind:    core.Vector(-0.01, 0, 0),
	}
}

// SimulateProjectile ticks until the projectile falls to the ground, plotting each
// position in red on a width×height canvas. Positions outside the canvas are skipped.
// It returns the canvas and the number of ticks taken.
func SimulateProjectile(p Projectile, env Environment, width, height int) (*canvas.Canvas, int, error) {
	c := canvas.New(width, height)
	ticks := 0
	for p.Position.Y > 0 {
		p = env.Tick(p)
		ticks++

		x := int(math.Round(p.Position.X))
		y := height - int(math.Round(p.Position.Y))
		err := c.WritePixel(x, y, core.Red)
		if err != nil && !errors.Is(err, canvas.ErrOutOfBounds) {
			return nil, ticks, err
		}
	}
	return c, ticks, nil
}
