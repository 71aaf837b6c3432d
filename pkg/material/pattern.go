package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PatternKind selects the procedural function a Pattern evaluates
type PatternKind int

const (
	PatternStripe PatternKind = iota
	PatternGradient
	PatternRing
	PatternChecker
	// PatternTest returns the pattern-space point as a color
	PatternTest
)

// String returns the lowercase name used in scene documents
func (k PatternKind) String() string {
	switch k {
	case PatternStripe:
		return "stripe"
	case PatternGradient:
		return "gradient"
	case PatternRing:
		return "ring"
	case PatternChecker:
		return "checker"
	case PatternTest:
		return "test"
	default:
		return fmt.Sprintf("PatternKind(%d)", int(k))
	}
}

// ParsePatternKind is the inverse of PatternKind.String
func ParsePatternKind(name string) (PatternKind, error) {
	for _, k := range []PatternKind{PatternStripe, PatternGradient, PatternRing, PatternChecker, PatternTest} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown pattern kind %q", name)
}

// Pattern is a procedural color source evaluated in its own coordinate space.
// A and B are the two colors the pattern alternates or blends between.
type Pattern struct {
	Kind PatternKind
	A, B core.Tuple

	transform core.Matrix4
	inverse   core.Matrix4
}

func newPattern(kind PatternKind, a, b core.Tuple) *Pattern {
	return &Pattern{
		Kind:      kind,
		A:         a,
		B:         b,
		transform: core.Identity,
		inverse:   core.Identity,
	}
}

// NewStripePattern alternates between a and b at every integer x
func NewStripePattern(a, b core.Tuple) *Pattern {
	return newPattern(PatternStripe, a, b)
}

// NewGradientPattern blends linearly from a to b over each unit of x
func NewGradientPattern(a, b core.Tuple) *Pattern {
	return newPattern(PatternGradient, a, b)
}

// NewRingPattern alternates concentric rings in the xz plane
func NewRingPattern(a, b core.Tuple) *Pattern {
	return newPattern(PatternRing, a, b)
}

// NewCheckerPattern alternates unit cubes in all three dimensions
func NewCheckerPattern(a, b core.Tuple) *Pattern {
	return newPattern(PatternChecker, a, b)
}

// NewTestPattern maps the pattern-space point directly to a color
func NewTestPattern() *Pattern {
	return newPattern(PatternTest, core.Black, core.Black)
}

// Transform returns the pattern-to-object transform
func (p *Pattern) Transform() core.Matrix4 {
	return p.transform
}

// SetTransform sets the pattern transform and caches its inverse
func (p *Pattern) SetTransform(m core.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	p.transform = m
	p.inverse = inv
	return nil
}

// ColorAt evaluates the pattern at a point already in pattern space
func (p *Pattern) ColorAt(point core.Tuple) core.Tuple {
	switch p.Kind {
	case PatternStripe:
		if isEven(math.Floor(point.X)) {
			return p.A
		}
		return p.B
	case PatternGradient:
		fraction := point.X - math.Floor(point.X)
		return p.A.Add(p.B.Subtract(p.A).Multiply(fraction))
	case PatternRing:
		if isEven(math.Floor(math.Sqrt(point.X*point.X + point.Z*point.Z))) {
			return p.A
		}
		return p.B
	case PatternChecker:
		if isEven(math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)) {
			return p.A
		}
		return p.B
	case PatternTest:
		return core.Color(point.X, point.Y, point.Z)
	default:
		return p.A
	}
}

// ColorAtObject converts an object-space point into pattern space and evaluates it
func (p *Pattern) ColorAtObject(objectPoint core.Tuple) core.Tuple {
	return p.ColorAt(p.inverse.MultiplyTuple(objectPoint))
}

// Equal compares two patterns by value; two nil patterns are equal
func (p *Pattern) Equal(other *Pattern) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Kind == other.Kind &&
		p.A.Equal(other.A) &&
		p.B.Equal(other.B) &&
		p.transform.Equal(other.transform)
}

func isEven(v float64) bool {
	return math.Mod(v, 2) == 0
}
