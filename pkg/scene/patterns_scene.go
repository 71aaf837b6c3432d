package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// NewPatternsScene shows each pattern kind on its own sphere above a checkered floor
func NewPatternsScene(width, height int) (*Scene, error) {
	var p placer
	w := world.New()
	w.Light = lights.NewPointLight(core.Point(-10, 10, -10), core.White)

	floor := geometry.NewPlane()
	floor.Material.Pattern = material.NewCheckerPattern(core.White, core.Color(0.1, 0.1, 0.1))
	floor.Material.Specular = 0
	w.AddShape(floor)

	backdrop := geometry.NewPlane()
	backdrop.Material.Pattern = material.NewRingPattern(core.Color(0.6, 0.6, 0.8), core.Color(0.3, 0.3, 0.5))
	backdrop.Material.Specular = 0
	w.AddShape(p.place(backdrop, core.Translation(0, 0, 6), core.RotationX(math.Pi/2)))

	stripes := material.NewStripePattern(core.Color(0.9, 0.3, 0.2), core.Color(0.9, 0.9, 0.9))
	if err := stripes.SetTransform(core.Chain(core.RotationZ(degrees(30)), core.Scaling(0.2, 0.2, 0.2))); err != nil {
		return nil, err
	}

	gradient := material.NewGradientPattern(core.Color(0.1, 0.3, 0.9), core.Color(0.9, 0.9, 0.2))
	if err := gradient.SetTransform(core.Chain(core.Translation(-1, 0, 0), core.Scaling(2, 2, 2))); err != nil {
		return nil, err
	}

	rings := material.NewRingPattern(core.Color(0.2, 0.7, 0.3), core.Color(0.95, 0.95, 0.95))
	if err := rings.SetTransform(core.Chain(core.RotationX(math.Pi/2), core.Scaling(0.15, 0.15, 0.15))); err != nil {
		return nil, err
	}

	checks := material.NewCheckerPattern(core.Color(0.8, 0.2, 0.6), core.Color(0.1, 0.1, 0.1))
	if err := checks.SetTransform(core.Scaling(0.4, 0.4, 0.4)); err != nil {
		return nil, err
	}

	for i, pattern := range []*material.Pattern{stripes, gradient, rings, checks} {
		sphere := geometry.NewSphere()
		sphere.Material.Pattern = pattern
		sphere.Material.Specular = 0.4
		sphere.Material.Shininess = 50
		x := -3.3 + float64(i)*2.2
		w.AddShape(p.place(sphere, core.Translation(x, 1, 0)))
	}

	if p.err != nil {
		return nil, p.err
	}

	camera, err := newCamera(width, height, degrees(60),
		core.Point(0, 3, -8),
		core.Point(0, 1, 0),
		core.Vector(0, 1, 0))
	if err != nil {
		return nil, err
	}

	return &Scene{Name: "patterns", World: w, Camera: camera}, nil
}
