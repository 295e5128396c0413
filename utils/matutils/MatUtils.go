// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"gonum.org/v1/gonum/mat"
)

// ColVec returns a mutable view of column j of m. Changes to the
// returned vector are reflected in m.
func ColVec(m *mat.Dense, j int) *mat.VecDense {
	return m.ColView(j).(*mat.VecDense)
}

// AddScaledCol performs column j of m += alpha * x
func AddScaledCol(m *mat.Dense, j int, alpha float64, x mat.Vector) {
	col := ColVec(m, j)
	col.AddScaledVec(col, alpha, x)
}

// VecClipMax performs an element-wise clipping of a vector's values
// such that each value is at most max
func VecClipMax(a *mat.VecDense, max float64) {
	for i := 0; i < a.Len(); i++ {
		if a.AtVec(i) > max {
			a.SetVec(i, max)
		}
	}
}

// VecOnes returns a vector of 1.0's
func VecOnes(length int) *mat.VecDense {
	oneSlice := make([]float64, length)
	for i := 0; i < length; i++ {
		oneSlice[i] = 1.0
	}
	return mat.NewVecDense(length, oneSlice)
}
