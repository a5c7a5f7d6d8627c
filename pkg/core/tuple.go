package core

import (
	"fmt"
	"math"
)

// TupleKind classifies a tuple by its w component
type TupleKind int

const (
	KindUndefined TupleKind = iota // w is fuzzy-equal to neither 0 nor 1
	KindPoint                      // w == 1
	KindVector                     // w == 0
)

func (k TupleKind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindVector:
		return "vector"
	default:
		return "undefined"
	}
}

// Tuple is a homogeneous coordinate. Points carry w=1 and vectors w=0.
// The algebra is unconstrained: adding two points yields w=2 and is not rejected.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple with an arbitrary w
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a point (w=1)
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector (w=0)
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether w is fuzzy-equal to 1
func (t Tuple) IsPoint() bool {
	return FloatEqual(t.W, 1)
}

// IsVector reports whether w is fuzzy-equal to 0
func (t Tuple) IsVector() bool {
	return FloatEqual(t.W, 0)
}

// Kind returns the classification implied by w
func (t Tuple) Kind() TupleKind {
	switch {
	case t.IsPoint():
		return KindPoint
	case t.IsVector():
		return KindVector
	default:
		return KindUndefined
	}
}

// Add returns the component-wise sum, including w
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference, including w
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar, including w
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// ScaleTuple is scalar*tuple; it is identical to t.Multiply(scalar)
func ScaleTuple(scalar float64, t Tuple) Tuple {
	return t.Multiply(scalar)
}

// Divide returns the tuple divided by a scalar, including w
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// MagnitudeSquared returns x²+y²+z²+w². Panics if t is not a vector.
func (t Tuple) MagnitudeSquared() float64 {
	requireVector("magnitude", t)
	return t.Dot(t)
}

// Magnitude returns the Euclidean norm over all four components.
// Panics with a *ContractError if t is not a vector.
func (t Tuple) Magnitude() float64 {
	requireVector("magnitude", t)
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit vector in the same direction.
// Panics if t is not a vector; the zero vector normalizes to itself.
func (t Tuple) Normalize() Tuple {
	requireVector("normalize", t)
	length := t.Magnitude()
	if length == 0 {
		return NewVector(0, 0, 0)
	}
	return t.Divide(length)
}

// Dot returns the sum of pairwise component products, including w
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the 3D cross product. Both operands must be vectors.
func (t Tuple) Cross(other Tuple) Tuple {
	requireVector("cross", t)
	requireVector("cross", other)
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// FuzzyEqual reports whether all four components are within Epsilon
func (t Tuple) FuzzyEqual(other Tuple) bool {
	return FloatEqual(t.X, other.X) &&
		FloatEqual(t.Y, other.Y) &&
		FloatEqual(t.Z, other.Z) &&
		FloatEqual(t.W, other.W)
}

func (t Tuple) String() string {
	switch t.Kind() {
	case KindPoint:
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	case KindVector:
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	default:
		return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
	}
}
