package core

import "math"

// Tolerances shared by the whole rendering core.
const (
	// Epsilon is the geometric tolerance used for equality checks and for
	// nudging hit points off a surface.
	Epsilon = 1e-5

	// HitEpsilon is the smallest t accepted as a visible hit. It is coarser
	// than Epsilon so secondary rays do not re-hit the surface they left.
	HitEpsilon = 0.01
)

// Tuple is a homogeneous 4-component value. W == 1 marks a point and W == 0 a
// vector. Colors reuse the type with X, Y, Z as red, green, blue.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple from all four components
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point creates a point (w = 1)
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a vector (w = 0)
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// Color creates a color; w is left at 0 so colors add like vectors
func Color(r, g, b float64) Tuple {
	return Tuple{X: r, Y: g, Z: b}
}

// Common colors
var (
	Black = Color(0, 0, 0)
	White = Color(1, 1, 1)
)

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return FloatEqual(t.W, 1)
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return FloatEqual(t.W, 0)
}

// Red returns the red channel of a color
func (t Tuple) Red() float64 { return t.X }

// Green returns the green channel of a color
func (t Tuple) Green() float64 { return t.Y }

// Blue returns the blue channel of a color
func (t Tuple) Blue() float64 { return t.Z }

// Add returns the component-wise sum
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply scales every component by scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide divides every component by scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// MultiplyColor returns the component-wise (Hadamard) product of two colors
func (t Tuple) MultiplyColor(other Tuple) Tuple {
	return Tuple{t.X * other.X, t.Y * other.Y, t.Z * other.Z, t.W * other.W}
}

// Magnitude returns the length of the tuple including w
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns the tuple divided by its magnitude.
// The caller must not normalize a zero-length tuple.
func (t Tuple) Normalize() Tuple {
	return t.Divide(t.Magnitude())
}

// Dot returns the 4-component dot product
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors; w is ignored
func (t Tuple) Cross(other Tuple) Tuple {
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect reflects the vector around normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equal compares two tuples component-wise within Epsilon
func (t Tuple) Equal(other Tuple) bool {
	return FloatEqual(t.X, other.X) &&
		FloatEqual(t.Y, other.Y) &&
		FloatEqual(t.Z, other.Z) &&
		FloatEqual(t.W, other.W)
}

// FloatEqual compares two floats within Epsilon
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
