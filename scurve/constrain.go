package scurve

import "golang.org/x/exp/constraints"

// Constrain clamps value to [low, high], matching the teacher driver
// packages' constrain[T] helper.
func Constrain[T constraints.Ordered](value, low, high T) T {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
