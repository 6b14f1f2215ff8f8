// internal/utils/math.go
package utils

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Step moves v by delta, snaps the result to the step grid and clamps it to [lo, hi].
// Snapping keeps repeated +0.5/-0.5 adjustments from accumulating float error.
func Step(v, delta, step, lo, hi float64) float64 {
	v += delta
	if step > 0 {
		v = math.Round(v/step) * step
	}
	return Clamp(v, lo, hi)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Trunc converts a screen coordinate to a pixel index the way the display
// driver does: toward zero.
func Trunc(v float64) int {
	return int(v)
}
