package fa

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdcontrol/projection"
)

// SparseLinear is a linear approximator over binary sparse features.
// Values are sums of the weights at the active feature indices. Errors
// are divided by the number of active features before being added to
// each active weight, so the total change of an update does not
// depend on the sparsity of the projection.
type SparseLinear struct {
	proj    projection.Sparse
	weights *mat.Dense
}

// NewSparseLinear returns a new SparseLinear approximator with zero
// weights
func NewSparseLinear(proj projection.Sparse, nOutputs int) (*SparseLinear,
	error) {
	if proj == nil {
		return nil, fmt.Errorf("newSparseLinear: projection cannot be nil")
	}
	if err := checkOutputs("newSparseLinear", nOutputs); err != nil {
		return nil, err
	}
	if proj.Size() < 1 || proj.Sparsity() < 1 {
		return nil, fmt.Errorf("newSparseLinear: projection must have "+
			"positive size and sparsity: have(%d, %d)", proj.Size(),
			proj.Sparsity())
	}

	return &SparseLinear{
		proj:    proj,
		weights: mat.NewDense(proj.Size(), nOutputs, nil),
	}, nil
}

// Weights returns the weights of the approximator
func (s *SparseLinear) Weights() *mat.Dense {
	return s.weights
}

// NumActions returns the number of outputs
func (s *SparseLinear) NumActions() int {
	_, c := s.weights.Dims()
	return c
}

// Indices returns the active features of state x
func (s *SparseLinear) Indices(x []float64) []int {
	return s.proj.ProjectSparse(x)
}

// EvaluateIndices returns the value of column a for the active
// features indices
func (s *SparseLinear) EvaluateIndices(indices []int, a int) float64 {
	checkAction("evaluateIndices", a, s.NumActions())

	var v float64
	for _, i := range indices {
		v += s.weights.At(i, a)
	}
	return v
}

// UpdateIndices distributes err evenly over the active feature
// indices of column a
func (s *SparseLinear) UpdateIndices(indices []int, a int, err float64) {
	checkAction("updateIndices", a, s.NumActions())

	scaled := err / float64(s.proj.Sparsity())
	for _, i := range indices {
		s.weights.Set(i, a, s.weights.At(i, a)+scaled)
	}
}

// Evaluate returns the value of state x
func (s *SparseLinear) Evaluate(x []float64) float64 {
	return s.EvaluateIndices(s.Indices(x), 0)
}

// Update updates the value of state x
func (s *SparseLinear) Update(x []float64, err float64) {
	s.UpdateIndices(s.Indices(x), 0, err)
}

// EvaluateAll returns the values of all actions in state x
func (s *SparseLinear) EvaluateAll(x []float64) []float64 {
	indices := s.Indices(x)
	values := make([]float64, s.NumActions())
	for a := range values {
		values[a] = s.EvaluateIndices(indices, a)
	}
	return values
}

// UpdateAll updates the values of all actions in state x
func (s *SparseLinear) UpdateAll(x []float64, errs []float64) {
	checkErrs("updateAll", errs, s.NumActions())

	indices := s.Indices(x)
	for a, err := range errs {
		s.UpdateIndices(indices, a, err)
	}
}

// EvaluateAction returns the value of action a in state x
func (s *SparseLinear) EvaluateAction(x []float64, a int) float64 {
	return s.EvaluateIndices(s.Indices(x), a)
}

// UpdateAction updates the value of action a in state x
func (s *SparseLinear) UpdateAction(x []float64, a int, err float64) {
	s.UpdateIndices(s.Indices(x), a, err)
}
