package projection

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdcontrol/spaces"
)

// UniformGrid is a one-hot projection over a space which is
// partitioned in every dimension. Each point in the space is assigned
// to exactly one grid cell, indexed in mixed radix with the first
// dimension varying fastest. Inputs outside of the space saturate to
// the nearest cell along each dimension.
//
// UniformGrid is both a dense and a sparse projection.
type UniformGrid struct {
	partitions []spaces.Partitioned
	nFeatures  int
}

// NewUniformGrid returns a new UniformGrid over the argument space
func NewUniformGrid(space spaces.Space) (*UniformGrid, error) {
	partitions, err := spaces.Partitions(space)
	if err != nil {
		return nil, fmt.Errorf("newUniformGrid: %w: %v", ErrNotPartitioned,
			err)
	}
	if len(partitions) == 0 {
		return nil, fmt.Errorf("newUniformGrid: space has no dimensions")
	}

	n, ok := space.Span().Int()
	if !ok {
		return nil, fmt.Errorf("newUniformGrid: %w", spaces.ErrInfiniteSpan)
	}

	return &UniformGrid{partitions, n}, nil
}

// Index returns the index of the grid cell containing x
func (u *UniformGrid) Index(x []float64) int {
	checkDim("uniformGrid", x, len(u.partitions))

	last := len(u.partitions) - 1
	acc := u.partitions[last].Convert(x[last])
	for d := last - 1; d >= 0; d-- {
		p := u.partitions[d]
		acc = p.Convert(x[d]) + p.Density()*acc
	}
	return acc
}

// Project implements the Projection interface
func (u *UniformGrid) Project(x []float64) *mat.VecDense {
	phi := mat.NewVecDense(u.nFeatures, nil)
	phi.SetVec(u.Index(x), 1.0)
	return phi
}

// ProjectOnto implements the Projection interface
func (u *UniformGrid) ProjectOnto(x []float64, phi *mat.VecDense) {
	checkSize("uniformGrid", phi, u.nFeatures)
	phi.Zero()
	phi.SetVec(u.Index(x), 1.0)
}

// ProjectSparse implements the Sparse interface
func (u *UniformGrid) ProjectSparse(x []float64) []int {
	return []int{u.Index(x)}
}

// Sparsity returns 1
func (u *UniformGrid) Sparsity() int {
	return 1
}

// Dim returns the number of dimensions of the grid
func (u *UniformGrid) Dim() int {
	return len(u.partitions)
}

// Size returns the number of cells in the grid
func (u *UniformGrid) Size() int {
	return u.nFeatures
}

// Equivalent returns whether other has the same dimensionality and
// size as the grid
func (u *UniformGrid) Equivalent(other Base) bool {
	return u.Dim() == other.Dim() && u.Size() == other.Size()
}
