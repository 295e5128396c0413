package fa

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdcontrol/projection"
	"github.com/samuelfneumann/tdcontrol/spaces"
	"github.com/samuelfneumann/tdcontrol/utils/matutils"
)

// Linear is a dense linear approximator. Values are dot products of a
// projected feature vector with columns of the weight matrix.
type Linear struct {
	proj    projection.Projection
	weights *mat.Dense
}

// NewLinear returns a new Linear approximator with zero weights
func NewLinear(proj projection.Projection, nOutputs int) (*Linear, error) {
	if proj == nil {
		return nil, fmt.Errorf("newLinear: projection cannot be nil")
	}
	if err := checkOutputs("newLinear", nOutputs); err != nil {
		return nil, err
	}
	if proj.Size() < 1 {
		return nil, fmt.Errorf("newLinear: projection has no features")
	}

	return &Linear{
		proj:    proj,
		weights: mat.NewDense(proj.Size(), nOutputs, nil),
	}, nil
}

// NewRBFNetwork returns a Linear approximator over normalised Gaussian
// radial basis features centred on the partitions of space
func NewRBFNetwork(space spaces.Space, nOutputs int) (*Linear, error) {
	rbf, err := projection.NewRBF(space)
	if err != nil {
		return nil, fmt.Errorf("newRBFNetwork: %w", err)
	}
	return NewLinear(rbf, nOutputs)
}

// Projection returns the projection of the approximator
func (l *Linear) Projection() projection.Projection {
	return l.proj
}

// Weights returns the weights of the approximator
func (l *Linear) Weights() *mat.Dense {
	return l.weights
}

// NumFeatures returns the number of features
func (l *Linear) NumFeatures() int {
	r, _ := l.weights.Dims()
	return r
}

// NumActions returns the number of outputs
func (l *Linear) NumActions() int {
	_, c := l.weights.Dims()
	return c
}

// Phi returns the feature vector of x
func (l *Linear) Phi(x []float64) *mat.VecDense {
	return l.proj.Project(x)
}

// EvaluatePhi returns the value of column 0 for features phi
func (l *Linear) EvaluatePhi(phi mat.Vector) float64 {
	return l.EvaluateActionPhi(phi, 0)
}

// UpdatePhi updates column 0 for features phi
func (l *Linear) UpdatePhi(phi mat.Vector, err float64) {
	l.UpdateActionPhi(phi, 0, err)
}

// EvaluateActionPhi returns the value of column a for features phi
func (l *Linear) EvaluateActionPhi(phi mat.Vector, a int) float64 {
	checkPhi("evaluateActionPhi", phi, l.NumFeatures())
	checkAction("evaluateActionPhi", a, l.NumActions())
	return mat.Dot(phi, l.weights.ColView(a))
}

// UpdateActionPhi adds err * phi to column a
func (l *Linear) UpdateActionPhi(phi mat.Vector, a int, err float64) {
	checkPhi("updateActionPhi", phi, l.NumFeatures())
	checkAction("updateActionPhi", a, l.NumActions())
	matutils.AddScaledCol(l.weights, a, err, phi)
}

// EvaluateAllPhi returns the value of every column for features phi
func (l *Linear) EvaluateAllPhi(phi mat.Vector) []float64 {
	checkPhi("evaluateAllPhi", phi, l.NumFeatures())

	values := mat.NewVecDense(l.NumActions(), nil)
	values.MulVec(l.weights.T(), phi)
	return values.RawVector().Data
}

// UpdateAllPhi adds phi ⊗ errs to the weights
func (l *Linear) UpdateAllPhi(phi mat.Vector, errs []float64) {
	checkPhi("updateAllPhi", phi, l.NumFeatures())
	checkErrs("updateAllPhi", errs, l.NumActions())

	l.weights.RankOne(l.weights, 1.0, phi, mat.NewVecDense(len(errs), errs))
}

// Evaluate returns the value of state x
func (l *Linear) Evaluate(x []float64) float64 {
	return l.EvaluatePhi(l.Phi(x))
}

// Update updates the value of state x
func (l *Linear) Update(x []float64, err float64) {
	l.UpdatePhi(l.Phi(x), err)
}

// EvaluateAll returns the values of all actions in state x
func (l *Linear) EvaluateAll(x []float64) []float64 {
	return l.EvaluateAllPhi(l.Phi(x))
}

// UpdateAll updates the values of all actions in state x
func (l *Linear) UpdateAll(x []float64, errs []float64) {
	l.UpdateAllPhi(l.Phi(x), errs)
}

// EvaluateAction returns the value of action a in state x
func (l *Linear) EvaluateAction(x []float64, a int) float64 {
	return l.EvaluateActionPhi(l.Phi(x), a)
}

// UpdateAction updates the value of action a in state x
func (l *Linear) UpdateAction(x []float64, a int, err float64) {
	l.UpdateActionPhi(l.Phi(x), a, err)
}

// String implements the fmt.Stringer interface
func (l *Linear) String() string {
	return fmt.Sprintf("Linear(%d x %d)", l.NumFeatures(), l.NumActions())
}
