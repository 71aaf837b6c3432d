package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Material holds the Phong surface parameters of a shape
type Material struct {
	Color      core.Tuple
	Ambient    float64
	Diffuse    float64
	Specular   float64
	Shininess  float64
	Reflective float64
	Pattern    *Pattern // nil means the flat Color is used
}

// DefaultMaterial returns a white, mostly diffuse, non-reflective material
func DefaultMaterial() Material {
	return Material{
		Color:      core.White,
		Ambient:    0.1,
		Diffuse:    0.9,
		Specular:   0.9,
		Shininess:  200.0,
		Reflective: 0.0,
	}
}

// NewMaterial creates a material without a pattern
func NewMaterial(color core.Tuple, ambient, diffuse, specular, shininess, reflective float64) Material {
	return Material{
		Color:      color,
		Ambient:    ambient,
		Diffuse:    diffuse,
		Specular:   specular,
		Shininess:  shininess,
		Reflective: reflective,
	}
}

// Equal compares two materials within core.Epsilon
func (m Material) Equal(other Material) bool {
	return m.Color.Equal(other.Color) &&
		core.FloatEqual(m.Ambient, other.Ambient) &&
		core.FloatEqual(m.Diffuse, other.Diffuse) &&
		core.FloatEqual(m.Specular, other.Specular) &&
		core.FloatEqual(m.Shininess, other.Shininess) &&
		core.FloatEqual(m.Reflective, other.Reflective) &&
		m.Pattern.Equal(other.Pattern)
}
