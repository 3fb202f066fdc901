package geometry

import "sort"

// Intersection records where along a ray an object was struck
type Intersection struct {
	Time   float64
	Object Object
}

// NewIntersection creates a new intersection
func NewIntersection(time float64, object Object) Intersection {
	return Intersection{Time: time, Object: object}
}

// Intersections is a list of intersections ordered by ascending time
type Intersections []Intersection

// NewIntersections collects intersections and sorts them by time
func NewIntersections(xs ...Intersection) Intersections {
	out := make(Intersections, len(xs))
	copy(out, xs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// Hit returns the intersection with the smallest non-negative time.
// The second result is false when every intersection lies behind the ray origin.
func (xs Intersections) Hit() (Intersection, bool) {
	best := -1
	for i, x := range xs {
		if x.Time < 0 {
			continue
		}
		if best < 0 || x.Time < xs[best].Time {
			best = i
		}
	}
	if best < 0 {
		return Intersection{}, false
	}
	return xs[best], true
}
