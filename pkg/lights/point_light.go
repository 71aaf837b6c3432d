package lights

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PointLight is an infinitely small light with no size, radiating equally in all directions
type PointLight struct {
	Position  core.Tuple
	Intensity core.Tuple
}

// NewPointLight creates a point light at position with the given color intensity
func NewPointLight(position, intensity core.Tuple) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Type implements Light
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Sample implements Light
func (pl *PointLight) Sample(point core.Tuple) LightSample {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Magnitude()
	return LightSample{
		Point:     pl.Position,
		Direction: toLight.Normalize(),
		Distance:  distance,
		Emission:  pl.Intensity,
	}
}

// Equal compares position and intensity
func (pl *PointLight) Equal(other *PointLight) bool {
	if pl == nil || other == nil {
		return pl == other
	}
	return pl.Position.Equal(other.Position) && pl.Intensity.Equal(other.Intensity)
}
