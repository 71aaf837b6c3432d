package world

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// DefaultWorld is the two concentric spheres lit from the upper left used as the
// reference scene throughout the tests and the "default" example scene
func DefaultWorld() *World {
	outer := geometry.NewSphere()
	outer.Material.Color = core.Color(0.8, 1.0, 0.6)
	outer.Material.Diffuse = 0.7
	outer.Material.Specular = 0.2

	inner := geometry.NewSphere()
	// Scaling is always invertible for non-zero factors
	_ = inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	w := New()
	w.Light = lights.NewPointLight(core.Point(-10, 10, -10), core.White)
	w.AddShape(outer, inner)
	return w
}
