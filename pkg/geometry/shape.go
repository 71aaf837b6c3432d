package geometry

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Kind discriminates the geometric primitive a Shape represents
type Kind int

const (
	// KindSphere is the unit sphere centred at the object-space origin
	KindSphere Kind = iota
	// KindPlane is the infinite xz plane at y = 0 in object space
	KindPlane
)

// String returns the lowercase name used in scene documents
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String
func ParseKind(name string) (Kind, error) {
	switch name {
	case "sphere":
		return KindSphere, nil
	case "plane":
		return KindPlane, nil
	}
	return 0, fmt.Errorf("unknown shape kind %q", name)
}

// Shape is a primitive placed in the world by an object-to-world transform.
// The inverse and inverse-transpose are cached when the transform is set, so a
// Shape can never hold a transform that cannot be inverted.
type Shape struct {
	Kind     Kind
	Material material.Material

	transform        core.Matrix4
	inverse          core.Matrix4
	inverseTranspose core.Matrix4
}

// NewShape creates a shape of the given kind with identity transform and default material
func NewShape(kind Kind) *Shape {
	return &Shape{
		Kind:             kind,
		Material:         material.DefaultMaterial(),
		transform:        core.Identity,
		inverse:          core.Identity,
		inverseTranspose: core.Identity,
	}
}

// NewSphere creates a unit sphere at the origin
func NewSphere() *Shape {
	return NewShape(KindSphere)
}

// NewPlane creates the xz plane through the origin
func NewPlane() *Shape {
	return NewShape(KindPlane)
}

// Transform returns the object-to-world transform
func (s *Shape) Transform() core.Matrix4 {
	return s.transform
}

// SetTransform validates and installs a new object-to-world transform
func (s *Shape) SetTransform(m core.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("%s transform: %w", s.Kind, err)
	}
	s.transform = m
	s.inverse = inv
	s.inverseTranspose = inv.Transpose()
	return nil
}

// WorldToObject converts a world-space point or vector into object space
func (s *Shape) WorldToObject(t core.Tuple) core.Tuple {
	return s.inverse.MultiplyTuple(t)
}

// Intersect transforms the ray into object space and returns every
// intersection with this shape, in ascending t order
func (s *Shape) Intersect(ray core.Ray) Intersections {
	localRay := ray.Transform(s.inverse)
	ts := s.localIntersect(localRay)
	return s.Intersections(ts...)
}

// Intersections wraps each t in an Intersection referencing this shape
func (s *Shape) Intersections(ts ...float64) Intersections {
	xs := make(Intersections, 0, len(ts))
	for _, t := range ts {
		xs = append(xs, NewIntersection(t, s))
	}
	return xs
}

// NormalAt returns the unit world-space surface normal at a world-space point
func (s *Shape) NormalAt(worldPoint core.Tuple) core.Tuple {
	localPoint := s.inverse.MultiplyTuple(worldPoint)
	localNormal := s.localNormalAt(localPoint)

	// The inverse-transpose keeps normals perpendicular under non-uniform scaling
	worldNormal := s.inverseTranspose.MultiplyTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}

// ColorAt returns the material color at a world-space point, evaluating the
// pattern in object space when the material has one
func (s *Shape) ColorAt(worldPoint core.Tuple) core.Tuple {
	if s.Material.Pattern == nil {
		return s.Material.Color
	}
	return s.Material.Pattern.ColorAtObject(s.WorldToObject(worldPoint))
}

// Equal compares kind, transform and material by value
func (s *Shape) Equal(other *Shape) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Kind == other.Kind &&
		s.transform.Equal(other.transform) &&
		s.Material.Equal(other.Material)
}

// localIntersect returns the object-space hit distances in ascending order
func (s *Shape) localIntersect(ray core.Ray) []float64 {
	switch s.Kind {
	case KindSphere:
		return intersectUnitSphere(ray)
	case KindPlane:
		return intersectXZPlane(ray)
	default:
		return nil
	}
}

// localNormalAt returns the object-space normal for a point on the surface
func (s *Shape) localNormalAt(point core.Tuple) core.Tuple {
	switch s.Kind {
	case KindSphere:
		return point.Subtract(core.Point(0, 0, 0))
	case KindPlane:
		return core.Vector(0, 1, 0)
	default:
		return core.Vector(0, 0, 0)
	}
}
