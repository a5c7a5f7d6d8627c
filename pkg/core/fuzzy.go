package core

import "math"

// Epsilon is the absolute tolerance used for all fuzzy comparisons
const Epsilon = 1e-5

// FuzzyEqualer is implemented by types that can be compared within Epsilon.
// Composite types reduce the comparison to FloatEqual on each component.
type FuzzyEqualer[T any] interface {
	FuzzyEqual(other T) bool
}

// FloatEqual reports whether |a-b| < Epsilon.
// The relation is reflexive and symmetric but not transitive.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// FloatNotEqual is the negation of FloatEqual
func FloatNotEqual(a, b float64) bool {
	return !FloatEqual(a, b)
}

// FuzzyEqual compares any two values implementing FuzzyEqualer
func FuzzyEqual[T FuzzyEqualer[T]](a, b T) bool {
	return a.FuzzyEqual(b)
}

// FuzzyNotEqual is the negation of FuzzyEqual
func FuzzyNotEqual[T FuzzyEqualer[T]](a, b T) bool {
	return !a.FuzzyEqual(b)
}
