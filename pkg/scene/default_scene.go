package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// NewDefaultScene renders world.DefaultWorld from in front of the spheres
func NewDefaultScene(width, height int) (*Scene, error) {
	camera, err := newCamera(width, height, math.Pi/3,
		core.Point(0, 1.5, -5), // Slightly above to see the light falloff
		core.Point(0, 0, 0),
		core.Vector(0, 1, 0))
	if err != nil {
		return nil, err
	}

	return &Scene{
		Name:   "default",
		World:  world.DefaultWorld(),
		Camera: camera,
	}, nil
}
