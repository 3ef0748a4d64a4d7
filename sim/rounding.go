package sim

import "math"

// RoundHalfAwayFromZero rounds x to the nearest integer, ties away from zero.
// Every integer rounding in the flow model and the generator goes through it.
func RoundHalfAwayFromZero(x float64) float64 {
	return math.Round(x)
}

// Round2 rounds x to two decimal places, ties away from zero.
func Round2(x float64) float64 {
	return RoundHalfAwayFromZero(x*100) / 100
}

// IsFinite reports whether f is neither NaN nor ±Inf.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
