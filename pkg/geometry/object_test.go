package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestObject_DefaultTransform(t *testing.T) {
	s := NewSphere()
	if !s.Transform.Equals(core.Identity(4)) {
		t.Errorf("Expected identity transform, got\n%v", s.Transform)
	}
	if s.Shape.Kind() != "sphere" {
		t.Errorf("Expected sphere kind, got %q", s.Shape.Kind())
	}
}

func TestObject_WithTransform(t *testing.T) {
	s := NewSphere()
	translation := core.Translation(2, 3, 4)
	moved := s.WithTransform(translation)

	if !moved.Transform.Equals(translation) {
		t.Errorf("Expected new transform, got\n%v", moved.Transform)
	}
	if !s.Transform.Equals(core.Identity(4)) {
		t.Errorf("WithTransform should leave the original object unchanged")
	}
	if s.Equals(moved) {
		t.Errorf("Objects with different poses should not be equal")
	}
}

func TestObject_Intersect(t *testing.T) {
	ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	tests := []struct {
		name     string
		object   Object
		expected []float64
	}{
		{"unit sphere", NewSphere(), []float64{4, 6}},
		{"scaled sphere", NewSphere().WithTransform(core.Scaling(2, 2, 2)), []float64{3, 7}},
		{"translated sphere", NewSphere().WithTransform(core.Translation(5, 0, 0)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs, err := Intersect(ray, tt.object)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(xs) != len(tt.expected) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expected), len(xs))
			}
			for i, x := range xs {
				if !core.FloatEquals(x.Time, tt.expected[i]) {
					t.Errorf("Intersection %d: expected t=%v, got t=%v", i, tt.expected[i], x.Time)
				}
				if !x.Object.Equals(tt.object) {
					t.Errorf("Intersection %d should carry the intersected object", i)
				}
			}
		})
	}
}

func TestObject_Intersect_SingularTransform(t *testing.T) {
	s := NewSphere().WithTransform(core.Scaling(0, 1, 1))
	ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	xs, err := s.Intersect(ray)
	if !errors.Is(err, core.ErrNotInvertible) {
		t.Errorf("Expected ErrNotInvertible, got %v", err)
	}
	if xs != nil {
		t.Errorf("Expected no intersections on error, got %v", xs)
	}
}

func TestObject_NormalAt(t *testing.T) {
	third := math.Sqrt(3) / 3
	half := math.Sqrt2 / 2

	tests := []struct {
		name     string
		object   Object
		point    core.Tuple
		expected core.Tuple
	}{
		{"x axis", NewSphere(), core.Point(1, 0, 0), core.Vector(1, 0, 0)},
		{"y axis", NewSphere(), core.Point(0, 1, 0), core.Vector(0, 1, 0)},
		{"z axis", NewSphere(), core.Point(0, 0, 1), core.Vector(0, 0, 1)},
		{"non-axial", NewSphere(), core.Point(third, third, third), core.Vector(third, third, third)},
		{
			"translated",
			NewSphere().WithTransform(core.Translation(0, 1, 0)),
			core.Point(0, 1.70711, -0.70711),
			core.Vector(0, 0.70711, -0.70711),
		},
		{
			"scaled and rotated",
			NewSphere().WithTransform(core.Scaling(1, 0.5, 1).Multiply(core.RotationZ(math.Pi / 5))),
			core.Point(0, half, -half),
			core.Vector(0, 0.97014, -0.24254),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.object.NormalAt(tt.point)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if !got.IsVector() {
				t.Errorf("Normal should be a vector, got w=%v", got.W)
			}
			if !got.Equals(got.Normalize()) {
				t.Errorf("Normal should be normalized, got %v", got)
			}
		})
	}
}

func TestObject_NormalAt_SingularTransform(t *testing.T) {
	s := NewSphere().WithTransform(core.Scaling(1, 0, 1))
	if _, err := s.NormalAt(core.Point(1, 0, 0)); !errors.Is(err, core.ErrNotInvertible) {
		t.Errorf("Expected ErrNotInvertible, got %v", err)
	}
}
