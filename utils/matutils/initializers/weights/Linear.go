package weights

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// LinearMV initializes a weight matrix using weights drawn from a
// multivariate distribution. The distribution should have as many
// dimensions as there are columns (outputs) in the matrix. Each row
// (feature) is a new sample from the distribution, so that for a given
// output, all feature weights are drawn from the same marginal.
type LinearMV struct {
	distmv.Rander
}

// NewLinearMV returns a new LinearMV Initializer, with weights drawn
// from the distribution defined by rand
func NewLinearMV(rand distmv.Rander) LinearMV {
	if rand == nil {
		panic("newLinearMV: rand cannot be nil")
	}
	return LinearMV{rand}
}

// Initialize initializes a matrix of weights row by row
func (l LinearMV) Initialize(weights *mat.Dense) {
	if weights == nil {
		return
	}
	r, c := weights.Dims()

	row := make([]float64, c)
	for i := 0; i < r; i++ {
		row = l.Rand(row)
		weights.SetRow(i, row)
	}
}

// LinearUV initializes a matrix of weights, each drawn independently
// from a univariate distribution
type LinearUV struct {
	distuv.Rander
}

// NewLinearUV creates and returns a new LinearUV
func NewLinearUV(rand distuv.Rander) LinearUV {
	if rand == nil {
		panic("newLinearUV: rand cannot be nil")
	}
	return LinearUV{rand}
}

// Initialize initializes a matrix of weights using values drawn from
// a univariate distribution
func (l LinearUV) Initialize(weights *mat.Dense) {
	if weights == nil {
		return
	}

	r, c := weights.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			weights.Set(i, j, l.Rand())
		}
	}
}

// String implements the fmt.Stringer interface
func (l LinearUV) String() string {
	return fmt.Sprintf("LinearUV(%v)", l.Rander)
}
