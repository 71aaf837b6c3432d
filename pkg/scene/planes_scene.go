package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// NewPlanesScene creates three spheres standing in a hexagonal room of six
// walls, viewed from above
func NewPlanesScene(width, height int) (*Scene, error) {
	var p placer
	w := world.New()
	w.Light = lights.NewPointLight(core.Point(-1, 2.5, -1), core.White)

	wallMaterial := material.DefaultMaterial()
	wallMaterial.Color = core.Color(1, 0.9, 0.9)
	wallMaterial.Specular = 0

	floor := geometry.NewPlane()
	floor.Material = wallMaterial
	w.AddShape(floor)

	// Six walls 4 units out, 60 degrees apart
	for hex := 0; hex < 6; hex++ {
		wall := geometry.NewPlane()
		wall.Material = wallMaterial
		w.AddShape(p.place(wall,
			core.Translation(0, 0, 4),
			core.RotationY(float64(hex)*math.Pi/3),
			core.RotationX(math.Pi/2)))
	}

	spheres := []struct {
		color     core.Tuple
		transform core.Matrix4
	}{
		{core.Color(0.1, 1, 0.5), core.Translation(-0.5, -0.1, 0.5)},
		{core.Color(0.5, 1, 0.1), core.Chain(core.Translation(1.5, 0.5, -0.5), core.Scaling(0.5, 0.5, 0.5))},
		{core.Color(1, 0.8, 0.1), core.Chain(core.Translation(-1.5, 0.33, -0.75), core.Scaling(0.33, 0.33, 0.33))},
	}
	for _, s := range spheres {
		sphere := geometry.NewSphere()
		sphere.Material.Color = s.color
		sphere.Material.Diffuse = 0.7
		sphere.Material.Specular = 0.3
		w.AddShape(p.place(sphere, s.transform))
	}

	if p.err != nil {
		return nil, p.err
	}

	camera, err := newCamera(width, height, math.Pi/3,
		core.Point(0, 10.5, 0),
		core.Point(0, 1, 0),
		core.Vector(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return &Scene{Name: "planes", World: w, Camera: camera}, nil
}
