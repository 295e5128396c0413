package projection

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdcontrol/spaces"
	"github.com/samuelfneumann/tdcontrol/utils/floatutils"
)

// RBF is a dense projection of normalised Gaussian radial basis
// functions. Centres are placed at every combination of the partition
// centres of a partitioned space, and the width along each dimension
// is the width of that dimension's partitions. Features are
//
//	φ_i(x) = exp(Σ_d γ_d (x_d - μ_{i,d})²) / Σ_j exp(Σ_d γ_d (x_d - μ_{j,d})²)
//
// with γ_d = -1 / width_d², so that the features of any input sum to
// one.
type RBF struct {
	mu    *mat.Dense // centres x dims
	gamma []float64
}

// NewRBF returns a new RBF projection over the argument space, which
// must be partitioned in every dimension
func NewRBF(space spaces.Space) (*RBF, error) {
	if _, ok := space.Span().Int(); !ok {
		return nil, fmt.Errorf("newRBF: %w", spaces.ErrInfiniteSpan)
	}

	partitions, err := spaces.Partitions(space)
	if err != nil {
		return nil, fmt.Errorf("newRBF: %w: %v", ErrNotPartitioned, err)
	}
	if len(partitions) == 0 {
		return nil, fmt.Errorf("newRBF: space has no dimensions")
	}

	centres := make([][]float64, len(partitions))
	gamma := make([]float64, len(partitions))
	for i, p := range partitions {
		centres[i] = p.Centres()
		w := p.PartitionWidth()
		gamma[i] = -1.0 / (w * w)
	}

	combinations := spaces.CartesianProduct(centres)
	mu := mat.NewDense(len(combinations), len(partitions), nil)
	for i, c := range combinations {
		mu.SetRow(i, c)
	}

	return &RBF{mu, gamma}, nil
}

// Centres returns the centres of the radial basis functions, one per
// row
func (r *RBF) Centres() mat.Matrix {
	return r.mu
}

// Project implements the Projection interface
func (r *RBF) Project(x []float64) *mat.VecDense {
	phi := mat.NewVecDense(r.Size(), nil)
	r.ProjectOnto(x, phi)
	return phi
}

// ProjectOnto implements the Projection interface
func (r *RBF) ProjectOnto(x []float64, phi *mat.VecDense) {
	checkDim("rbf", x, len(r.gamma))
	checkSize("rbf", phi, r.Size())

	exponents := make([]float64, r.Size())
	for i := range exponents {
		var e float64
		for d, g := range r.gamma {
			diff := x[d] - r.mu.At(i, d)
			e += g * diff * diff
		}
		exponents[i] = e
	}

	// Normalising through a softmax keeps the features a partition
	// of unity even when every exponential underflows
	features := floatutils.Softmax(nil, exponents, 1.0)
	for i, f := range features {
		phi.SetVec(i, f)
	}
}

// Dim returns the dimensionality of inputs
func (r *RBF) Dim() int {
	return len(r.gamma)
}

// Size returns the number of centres
func (r *RBF) Size() int {
	rows, _ := r.mu.Dims()
	return rows
}

// Equivalent returns whether other is an RBF projection with the same
// centres and widths
func (r *RBF) Equivalent(other Base) bool {
	o, ok := other.(*RBF)
	return ok && mat.Equal(r.mu, o.mu) && floats.Equal(r.gamma, o.gamma)
}
