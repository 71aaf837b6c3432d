package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// intersectXZPlane intersects the y = 0 plane; parallel rays miss
func intersectXZPlane(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}
