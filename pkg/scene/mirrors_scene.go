package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// NewMirrorsScene places colored spheres between two facing mirrors so every
// primary ray can bounce until the reflection budget runs out
func NewMirrorsScene(width, height int) (*Scene, error) {
	var p placer
	w := world.New()
	w.Light = lights.NewPointLight(core.Point(0, 4, -6), core.White)

	floor := geometry.NewPlane()
	floor.Material.Pattern = material.NewCheckerPattern(core.Color(0.9, 0.9, 0.9), core.Color(0.2, 0.2, 0.25))
	floor.Material.Specular = 0
	floor.Material.Reflective = 0.1
	w.AddShape(p.place(floor, core.Translation(0, -1, 0)))

	mirror := material.NewMaterial(core.Color(0.05, 0.05, 0.05), 0.05, 0.1, 1, 300, 0.9)
	left := geometry.NewPlane()
	left.Material = mirror
	w.AddShape(p.place(left, core.Translation(-3, 0, 0), core.RotationZ(math.Pi/2)))

	right := geometry.NewPlane()
	right.Material = mirror
	w.AddShape(p.place(right, core.Translation(3, 0, 0), core.RotationZ(math.Pi/2)))

	colors := []core.Tuple{
		core.Color(0.9, 0.2, 0.2),
		core.Color(0.2, 0.9, 0.3),
		core.Color(0.2, 0.4, 0.9),
	}
	for i, c := range colors {
		sphere := geometry.NewSphere()
		sphere.Material.Color = c
		sphere.Material.Diffuse = 0.7
		sphere.Material.Specular = 0.5
		sphere.Material.Reflective = 0.2
		x := float64(i-1) * 1.5
		w.AddShape(p.place(sphere, core.Translation(x, -0.4, float64(i)), core.Scaling(0.6, 0.6, 0.6)))
	}

	if p.err != nil {
		return nil, p.err
	}

	camera, err := newCamera(width, height, degrees(70),
		core.Point(0.5, 1.2, -6),
		core.Point(0, 0, 1),
		core.Vector(0, 1, 0))
	if err != nil {
		return nil, err
	}

	return &Scene{Name: "mirrors", World: w, Camera: camera}, nil
}
