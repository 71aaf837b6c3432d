package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light is a source that can be sampled from a shading point
type Light interface {
	Type() LightType

	// Sample returns the direction and distance FROM point TO the light
	Sample(point core.Tuple) LightSample
}

// LightSample describes a light as seen from a single shading point
type LightSample struct {
	Point     core.Tuple // Position of the light
	Direction core.Tuple // Unit vector from shading point to light
	Distance  float64    // Distance to light
	Emission  core.Tuple // Light intensity
}
