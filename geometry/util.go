package geometry

import "gonum.org/v1/gonum/floats/scalar"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. The
// sign predicates all reduce to a signed area, and without a tolerance an
// area that should be exactly zero can come out as a vanishingly thin sliver,
// which flips orientation answers on collinear inputs.
func Equal(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Tolerance)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
