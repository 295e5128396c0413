package projection

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BasisFunction is a kernel centred at some location
type BasisFunction struct {
	Loc    []float64
	Kernel Kernel
}

// Evaluate returns the kernel similarity between the basis location
// and x
func (b BasisFunction) Evaluate(x []float64) float64 {
	return b.Kernel.Kernel(b.Loc, x)
}

// BasisNetwork is a dense projection whose i-th feature is the
// similarity of the input to the i-th basis function. All basis
// locations share the same dimensionality, which is the
// dimensionality of the projection's inputs.
type BasisNetwork struct {
	bases []BasisFunction
	dim   int
}

// NewBasisNetwork returns a new BasisNetwork
func NewBasisNetwork(bases []BasisFunction) (*BasisNetwork, error) {
	if len(bases) == 0 {
		return nil, fmt.Errorf("newBasisNetwork: at least one basis " +
			"function is required")
	}

	dim := len(bases[0].Loc)
	for i, b := range bases {
		if b.Kernel == nil {
			return nil, fmt.Errorf("newBasisNetwork: basis %d has no "+
				"kernel", i)
		}
		if len(b.Loc) != dim {
			return nil, fmt.Errorf("newBasisNetwork: basis %d has "+
				"dimension %d but basis 0 has dimension %d", i, len(b.Loc),
				dim)
		}
	}

	return &BasisNetwork{bases: bases, dim: dim}, nil
}

// Project implements the Projection interface
func (b *BasisNetwork) Project(x []float64) *mat.VecDense {
	phi := mat.NewVecDense(b.Size(), nil)
	b.ProjectOnto(x, phi)
	return phi
}

// ProjectOnto implements the Projection interface
func (b *BasisNetwork) ProjectOnto(x []float64, phi *mat.VecDense) {
	checkDim("basisNetwork", x, b.dim)
	checkSize("basisNetwork", phi, b.Size())

	for i, basis := range b.bases {
		phi.SetVec(i, basis.Evaluate(x))
	}
}

// Dim returns the dimensionality of the basis locations
func (b *BasisNetwork) Dim() int {
	return b.dim
}

// Size returns the number of basis functions
func (b *BasisNetwork) Size() int {
	return len(b.bases)
}

// Equivalent returns whether other is a BasisNetwork with bases at the
// same locations
func (b *BasisNetwork) Equivalent(other Base) bool {
	o, ok := other.(*BasisNetwork)
	if !ok || o.Size() != b.Size() || o.Dim() != b.Dim() {
		return false
	}

	for i := range b.bases {
		if !floats.Equal(b.bases[i].Loc, o.bases[i].Loc) {
			return false
		}
	}
	return true
}
