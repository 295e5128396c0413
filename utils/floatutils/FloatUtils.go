// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r1"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// ClipInterval is a wrapper to use Clip with an r1.Interval instead of
// a separate max and min value
func ClipInterval(value float64, interval r1.Interval) float64 {
	return Clip(value, interval.Min, interval.Max)
}

// Softmax computes softmax(values / temperature) into dst, which is
// allocated if nil. The maximum value is subtracted before
// exponentiating so that large values do not overflow.
func Softmax(dst, values []float64, temperature float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(values))
	}
	if len(dst) != len(values) {
		panic("softmax: destination length mismatch")
	}

	max := floats.Max(values)
	for i, v := range values {
		dst[i] = math.Exp((v - max) / temperature)
	}
	floats.Scale(1/floats.Sum(dst), dst)

	return dst
}
