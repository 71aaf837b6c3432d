package lights

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Lighting evaluates the Phong reflection model at point.
// object supplies the pattern space for patterned materials and may be nil for
// flat-colored materials. A shadowed point receives only the ambient term.
func Lighting(m material.Material, object *geometry.Shape, light Light, point, eyev, normalv core.Tuple, inShadow bool) core.Tuple {
	base := m.Color
	if m.Pattern != nil {
		if object != nil {
			base = object.ColorAt(point)
		} else {
			base = m.Pattern.ColorAtObject(point)
		}
	}

	sample := light.Sample(point)
	effective := base.MultiplyColor(sample.Emission)
	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightDotNormal := sample.Direction.Dot(normalv)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectv := sample.Direction.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = sample.Emission.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
