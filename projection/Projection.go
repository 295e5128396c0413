// Package projection implements feature construction: mappings from
// raw states to fixed-size feature vectors (dense projections) or sets
// of active feature indices (sparse projections).
//
// Projections hold no learned parameters. Once constructed, the number
// of features a projection produces never changes and must equal the
// number of rows of any weight matrix the projection is paired with.
package projection

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrNotPartitioned is returned when a projection requires every
// dimension of its input space to be partitioned
var ErrNotPartitioned = errors.New("projection: input space must be " +
	"partitioned in every dimension")

// Base is implemented by every projection
type Base interface {
	// Dim returns the dimensionality of the inputs to the projection
	Dim() int

	// Size returns the number of features the projection produces
	Size() int

	// Equivalent returns whether the argument projection is
	// structurally compatible with the receiver
	Equivalent(other Base) bool
}

// Projection is a dense projection which maps states to feature
// vectors of length Size()
type Projection interface {
	Base

	// Project returns the feature vector of x
	Project(x []float64) *mat.VecDense

	// ProjectOnto overwrites phi with the feature vector of x
	ProjectOnto(x []float64, phi *mat.VecDense)
}

// Sparse is a projection which maps states to the indices of the
// non-zero (binary) features of a feature vector of length Size()
type Sparse interface {
	Base

	// ProjectSparse returns the indices of the active features of x
	ProjectSparse(x []float64) []int

	// Sparsity returns the number of active features for any input
	Sparsity() int
}

// ToDense converts a set of active feature indices into a binary
// feature vector of length size
func ToDense(indices []int, size int) *mat.VecDense {
	phi := mat.NewVecDense(size, nil)
	for _, i := range indices {
		phi.SetVec(i, 1.0)
	}
	return phi
}

// checkDim panics if x does not have dim elements
func checkDim(name string, x []float64, dim int) {
	if len(x) != dim {
		panic(fmt.Sprintf("%s: input dimension mismatch \n\twant(%d) "+
			"\n\thave(%d)", name, dim, len(x)))
	}
}

// checkSize panics if phi does not have size elements
func checkSize(name string, phi *mat.VecDense, size int) {
	if phi.Len() != size {
		panic(fmt.Sprintf("%s: feature vector size mismatch \n\twant(%d) "+
			"\n\thave(%d)", name, size, phi.Len()))
	}
}
