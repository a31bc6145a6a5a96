package vmath

import "math"

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LerpClamped maps v from [inMin, inMax] onto [outMin, outMax] linearly
// Inputs outside the range pin to the nearest output bound; NaN maps to the output midpoint
func LerpClamped(v, inMin, inMax, outMin, outMax float64) float64 {
	if math.IsNaN(v) {
		return (outMin + outMax) / 2
	}
	if inMax == inMin {
		return outMin
	}
	t := Clamp((v-inMin)/(inMax-inMin), 0, 1)
	return outMin + (outMax-outMin)*t
}

// IsFinite reports whether v is neither NaN nor ±Inf
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
