// Package fa implements linear function approximators over the
// projections of package projection.
//
// Every approximator owns a weight matrix with one row per feature and
// one column per output. The same matrix serves both as a state-value
// function (column 0) and as an action-value function (one column per
// action), so a single approximator can be handed to code which needs
// either view.
//
// Updates add error * feature to the relevant weights: callers fold any
// step size into the error before updating.
package fa

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdcontrol/projection"
	"github.com/samuelfneumann/tdcontrol/utils/matutils/initializers/weights"
)

// VFunction is a state-value function
type VFunction interface {
	// Evaluate returns the value of state x
	Evaluate(x []float64) float64

	// Update adds err times the gradient of the value of x to the
	// weights
	Update(x []float64, err float64)
}

// QFunction is an action-value function over a finite set of actions
type QFunction interface {
	// EvaluateAll returns the value of every action in state x
	EvaluateAll(x []float64) []float64

	// UpdateAll updates the value of every action in state x, where
	// errs[a] is the error of action a
	UpdateAll(x []float64, errs []float64)

	// EvaluateAction returns the value of action a in state x
	EvaluateAction(x []float64, a int) float64

	// UpdateAction updates the value of action a in state x
	UpdateAction(x []float64, a int, err float64)

	// NumActions returns the number of actions
	NumActions() int
}

// LinearFunction is a dense linear approximator whose features can be
// computed once and reused across several evaluations and updates
type LinearFunction interface {
	VFunction
	QFunction

	// Phi returns the feature vector of state x
	Phi(x []float64) *mat.VecDense

	EvaluatePhi(phi mat.Vector) float64
	UpdatePhi(phi mat.Vector, err float64)
	EvaluateAllPhi(phi mat.Vector) []float64
	EvaluateActionPhi(phi mat.Vector, a int) float64
	UpdateActionPhi(phi mat.Vector, a int, err float64)

	// UpdateAllPhi adds the outer product of phi and errs to the
	// weights in a single pass
	UpdateAllPhi(phi mat.Vector, errs []float64)

	// NumFeatures returns the number of features, the number of rows
	// of the weight matrix
	NumFeatures() int

	// Weights returns the weight matrix. Changes to the returned
	// matrix are reflected in the approximator.
	Weights() *mat.Dense
}

// Function is an approximator which serves as both a state-value and
// an action-value function
type Function interface {
	VFunction
	QFunction
}

// New returns an approximator over the argument projection with
// nOutputs outputs. Projections which can produce dense feature
// vectors result in a *Linear. Purely sparse projections result in a
// *SparseLinear.
func New(p projection.Base, nOutputs int) (Function, error) {
	switch proj := p.(type) {
	case projection.Projection:
		l, err := NewLinear(proj, nOutputs)
		if err != nil {
			return nil, err
		}
		return l, nil

	case projection.Sparse:
		s, err := NewSparseLinear(proj, nOutputs)
		if err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, fmt.Errorf("new: unknown projection type %T", p)
	}
}

// NewActionValue returns an action-value function over the argument
// projection. Hashed tile codings select tiles with the action, giving
// a *TileCoded. Every other projection is handled as in New.
func NewActionValue(p projection.Base, nActions int) (QFunction, error) {
	if tiling, ok := p.(*projection.TileCoding); ok {
		t, err := NewTileCoded(tiling, nActions)
		if err != nil {
			return nil, err
		}
		return t, nil
	}

	f, err := New(p, nActions)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Initialize initializes the weights of approximator f using init. It
// returns an error if f does not expose its weights.
func Initialize(f interface{}, init weights.Initializer) error {
	w, ok := f.(interface{ Weights() *mat.Dense })
	if !ok {
		return fmt.Errorf("initialize: approximator %T has no weights", f)
	}
	init.Initialize(w.Weights())
	return nil
}

// checkOutputs returns an error if an approximator cannot be built
// with the argument number of outputs
func checkOutputs(name string, nOutputs int) error {
	if nOutputs < 1 {
		return fmt.Errorf("%s: must have at least one output: have(%d)",
			name, nOutputs)
	}
	return nil
}

// checkAction panics if a is not a valid column of a weight matrix
// with n columns
func checkAction(name string, a, n int) {
	if a < 0 || a >= n {
		panic(fmt.Sprintf("%s: action out of range \n\twant([0, %d)) "+
			"\n\thave(%d)", name, n, a))
	}
}

// checkErrs panics if errs does not have n elements
func checkErrs(name string, errs []float64, n int) {
	if len(errs) != n {
		panic(fmt.Sprintf("%s: one error is needed per output "+
			"\n\twant(%d) \n\thave(%d)", name, n, len(errs)))
	}
}

// checkPhi panics if phi does not have n elements
func checkPhi(name string, phi mat.Vector, n int) {
	if phi.Len() != n {
		panic(fmt.Sprintf("%s: feature vector has wrong size "+
			"\n\twant(%d) \n\thave(%d)", name, n, phi.Len()))
	}
}
