package fa

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdcontrol/projection"
)

// TileCoded is an action-value function over hashed tile coding which
// shares a single weight vector between all actions. The tiles of an
// action are selected by hashing the state together with the action
// index, so different actions use (up to collisions) different
// weights.
type TileCoded struct {
	tiling   *projection.TileCoding
	weights  *mat.Dense // memory size x 1
	nActions int
}

// NewTileCoded returns a new TileCoded approximator with zero weights
func NewTileCoded(tiling *projection.TileCoding, nActions int) (*TileCoded,
	error) {
	if tiling == nil {
		return nil, fmt.Errorf("newTileCoded: tiling cannot be nil")
	}
	if err := checkOutputs("newTileCoded", nActions); err != nil {
		return nil, err
	}

	return &TileCoded{
		tiling:   tiling,
		weights:  mat.NewDense(tiling.Size(), 1, nil),
		nActions: nActions,
	}, nil
}

// Weights returns the shared weight vector as a single column matrix
func (t *TileCoded) Weights() *mat.Dense {
	return t.weights
}

// NumActions returns the number of actions
func (t *TileCoded) NumActions() int {
	return t.nActions
}

// Tiles returns the active tiles of action a in state x
func (t *TileCoded) Tiles(x []float64, a int) []int {
	checkAction("tiles", a, t.nActions)
	return t.tiling.ProjectSelect(x, a)
}

// EvaluateAction returns the value of action a in state x
func (t *TileCoded) EvaluateAction(x []float64, a int) float64 {
	var v float64
	for _, i := range t.Tiles(x, a) {
		v += t.weights.At(i, 0)
	}
	return v
}

// UpdateAction distributes err evenly over the tiles of action a in
// state x
func (t *TileCoded) UpdateAction(x []float64, a int, err float64) {
	scaled := err / float64(t.tiling.Sparsity())
	for _, i := range t.Tiles(x, a) {
		t.weights.Set(i, 0, t.weights.At(i, 0)+scaled)
	}
}

// EvaluateAll returns the values of all actions in state x
func (t *TileCoded) EvaluateAll(x []float64) []float64 {
	values := make([]float64, t.nActions)
	for a := range values {
		values[a] = t.EvaluateAction(x, a)
	}
	return values
}

// UpdateAll updates the values of all actions in state x
func (t *TileCoded) UpdateAll(x []float64, errs []float64) {
	checkErrs("updateAll", errs, t.nActions)
	for a, err := range errs {
		t.UpdateAction(x, a, err)
	}
}

// Evaluate returns the value of state x under action 0
func (t *TileCoded) Evaluate(x []float64) float64 {
	return t.EvaluateAction(x, 0)
}

// Update updates the value of state x under action 0
func (t *TileCoded) Update(x []float64, err float64) {
	t.UpdateAction(x, 0, err)
}
