package geometry

import (
	"sort"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Intersection records where along a ray a shape was crossed
type Intersection struct {
	T      float64
	Object *Shape
}

// NewIntersection creates an intersection at t with object
func NewIntersection(t float64, object *Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of candidate hits for a single ray
type Intersections []Intersection

// Sort orders the intersections by ascending t
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the visible intersection: the lowest t above core.HitEpsilon.
// Ties keep the earliest entry. The list does not need to be sorted.
func (xs Intersections) Hit() (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T <= core.HitEpsilon {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}

// PreparedHit is the shading state of an intersection relative to the ray that
// produced it. It can only be built by Intersection.Prepare.
type PreparedHit struct {
	T      float64
	Object *Shape

	Point     core.Tuple
	OverPoint core.Tuple // Point nudged along the normal for secondary rays
	EyeV      core.Tuple
	NormalV   core.Tuple
	ReflectV  core.Tuple
	Inside    bool
}

// Prepare computes the hit point, eye and normal vectors for ray.
// A normal facing away from the eye is flipped and Inside is set.
func (i Intersection) Prepare(ray core.Ray) PreparedHit {
	point := ray.Position(i.T)
	eyev := ray.Direction.Negate()
	normalv := i.Object.NormalAt(point)

	inside := false
	if normalv.Dot(eyev) < 0 {
		inside = true
		normalv = normalv.Negate()
	}

	return PreparedHit{
		T:         i.T,
		Object:    i.Object,
		Point:     point,
		OverPoint: point.Add(normalv.Multiply(core.Epsilon)),
		EyeV:      eyev,
		NormalV:   normalv,
		ReflectV:  ray.Direction.Reflect(normalv),
		Inside:    inside,
	}
}
