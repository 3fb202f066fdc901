package scene

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// NewDefaultScene creates the unit sphere seen from z=-5 through a 7×7 wall at z=10
func NewDefaultScene() Scene {
	return Scene{
		Eye:        core.Point(0, 0, -5),
		WallZ:      10,
		WallSize:   7,
		Object:     geometry.NewSphere(),
		HitColour:  core.Red,
		Background: core.Black,
	}
}

// NewSquashedScene shrinks the sphere along y
func NewSquashedScene() Scene {
	return NewDefaultScene().WithTransform(core.Scaling(1, 0.5, 1))
}

// NewNarrowScene shrinks the sphere along x
func NewNarrowScene() Scene {
	return NewDefaultScene().WithTransform(core.Scaling(0.5, 1, 1))
}

// NewRotatedScene shrinks the sphere along x, then rotates it about z
func NewRotatedScene() Scene {
	return NewDefaultScene().WithTransform(
		core.Identity(4).Scale(0.5, 1, 1).RotateZ(math.Pi / 4),
	)
}

// NewShearedScene shrinks the sphere along x, then shears it
func NewShearedScene() Scene {
	return NewDefaultScene().WithTransform(
		core.Identity(4).Scale(0.5, 1, 1).Shear(1, 0, 0, 0, 0, 0),
	)
}
