package world

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// DefaultMaxBounces is the reflection budget handed to ColorAt by renderers
const DefaultMaxBounces = 5

// World is the collection of shapes and the single light being rendered.
// Objects keep insertion order; a World is read-only while rendering.
type World struct {
	Light   *lights.PointLight // nil means no direct lighting
	Objects []*geometry.Shape
}

// New creates an empty world with no light
func New() *World {
	return &World{Objects: make([]*geometry.Shape, 0)}
}

// AddShape appends shapes to the object list
func (w *World) AddShape(shapes ...*geometry.Shape) {
	w.Objects = append(w.Objects, shapes...)
}

// ObjectCount returns the number of shapes in the world
func (w *World) ObjectCount() int {
	return len(w.Objects)
}

// Contains reports whether a shape equal to s is in the world
func (w *World) Contains(s *geometry.Shape) bool {
	for _, obj := range w.Objects {
		if obj.Equal(s) {
			return true
		}
	}
	return false
}

// IntersectWorld intersects ray with every object and returns the hits sorted by t
func (w *World) IntersectWorld(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(ray)...)
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether an object lies between point and the light.
// A world without a light shadows everything.
func (w *World) IsShadowed(point core.Tuple) bool {
	if w.Light == nil {
		return true
	}

	sample := w.Light.Sample(point)
	shadowRay := core.NewRay(point, sample.Direction)

	hit, ok := w.IntersectWorld(shadowRay).Hit()
	return ok && hit.T < sample.Distance
}

// ShadeHit returns the direct Phong color at hit plus its reflected contribution
func (w *World) ShadeHit(hit geometry.PreparedHit, remaining int) core.Tuple {
	surface := core.Black
	if w.Light != nil {
		shadowed := w.IsShadowed(hit.OverPoint)
		surface = lights.Lighting(hit.Object.Material, hit.Object, w.Light,
			hit.OverPoint, hit.EyeV, hit.NormalV, shadowed)
	}

	reflected := w.ReflectedColor(hit, remaining)
	return surface.Add(reflected)
}

// ReflectedColor follows the reflection ray from a reflective surface.
// It returns black once the bounce budget is spent.
func (w *World) ReflectedColor(hit geometry.PreparedHit, remaining int) core.Tuple {
	reflective := hit.Object.Material.Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(hit.OverPoint, hit.ReflectV)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Multiply(reflective)
}

// ColorAt traces ray into the world. Rays that hit nothing are black.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Tuple {
	hit, ok := w.IntersectWorld(ray).Hit()
	if !ok {
		return core.Black
	}
	return w.ShadeHit(hit.Prepare(ray), remaining)
}
