// Package prediction implements agents which learn the state-value
// function of the policy generating their transitions
package prediction

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/fa"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/timestep"
)

// TD implements one-step temporal difference learning, TD(0)
type TD struct {
	v     fa.VFunction
	alpha parameter.Parameter
	gamma parameter.Parameter
}

// NewTD returns a new TD agent learning the value function v with
// step size alpha and discount gamma
func NewTD(v fa.VFunction, alpha, gamma parameter.Parameter) (*TD, error) {
	if v == nil {
		return nil, fmt.Errorf("newTD: value function cannot be nil")
	}
	if err := checkParams(alpha, gamma); err != nil {
		return nil, fmt.Errorf("newTD: %v", err)
	}
	return &TD{v, alpha, gamma}, nil
}

// VFunction returns the value function learned by the agent
func (t *TD) VFunction() fa.VFunction {
	return t.v
}

// Evaluate implements the agent.PredictionAgent interface
func (t *TD) Evaluate(s []float64) float64 {
	return t.v.Evaluate(s)
}

// TDError returns the TD error of tr under the current value function
func (t *TD) TDError(tr timestep.Transition) float64 {
	return tdError(t.v, t.gamma.Value(), tr)
}

// HandleTransition implements the agent.PredictionAgent interface
func (t *TD) HandleTransition(tr timestep.Transition) float64 {
	delta := t.TDError(tr)
	t.v.Update(tr.From.State, t.alpha.Value()*delta)
	return delta
}

// HandleTerminal implements the agent.PredictionAgent interface
func (t *TD) HandleTerminal(_ []float64) {
	parameter.StepAll(t.alpha, t.gamma)
}

// tdError returns r + γV(s') - V(s), where the value of a terminal
// state is zero
func tdError(v fa.VFunction, gamma float64, tr timestep.Transition) float64 {
	target := tr.Reward
	if !tr.Terminal() {
		target += gamma * v.Evaluate(tr.To.State)
	}
	return target - v.Evaluate(tr.From.State)
}

func checkParams(params ...parameter.Parameter) error {
	for i, p := range params {
		if p == nil {
			return fmt.Errorf("parameter %d cannot be nil", i)
		}
	}
	return nil
}
