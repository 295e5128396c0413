package prediction

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/fa"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/timestep"
	"github.com/samuelfneumann/tdcontrol/trace"
)

// TDLambda implements TD(λ) with an eligibility trace over the
// features of a linear value function
type TDLambda struct {
	v     fa.LinearFunction
	trace trace.Trace
	alpha parameter.Parameter
	gamma parameter.Parameter
}

// NewTDLambda returns a new TDLambda agent. The trace must have one
// entry per feature of v.
func NewTDLambda(v fa.LinearFunction, tr trace.Trace, alpha,
	gamma parameter.Parameter) (*TDLambda, error) {
	if v == nil {
		return nil, fmt.Errorf("newTDLambda: value function cannot be nil")
	}
	if tr == nil {
		return nil, fmt.Errorf("newTDLambda: trace cannot be nil")
	}
	if n := tr.Get().Len(); n != v.NumFeatures() {
		return nil, fmt.Errorf("newTDLambda: trace size does not match "+
			"number of features \n\twant(%d) \n\thave(%d)", v.NumFeatures(),
			n)
	}
	if err := checkParams(alpha, gamma); err != nil {
		return nil, fmt.Errorf("newTDLambda: %v", err)
	}
	return &TDLambda{v, tr, alpha, gamma}, nil
}

// VFunction returns the value function learned by the agent
func (t *TDLambda) VFunction() fa.LinearFunction {
	return t.v
}

// Trace returns the eligibility trace of the agent
func (t *TDLambda) Trace() trace.Trace {
	return t.trace
}

// Evaluate implements the agent.PredictionAgent interface
func (t *TDLambda) Evaluate(s []float64) float64 {
	return t.v.Evaluate(s)
}

// HandleTransition implements the agent.PredictionAgent interface
func (t *TDLambda) HandleTransition(tr timestep.Transition) float64 {
	gamma := t.gamma.Value()
	phi := t.v.Phi(tr.From.State)

	target := tr.Reward
	if !tr.Terminal() {
		target += gamma * t.v.Evaluate(tr.To.State)
	}
	delta := target - t.v.EvaluatePhi(phi)

	t.trace.Decay(gamma)
	t.trace.Update(phi)
	t.v.UpdatePhi(t.trace.Get(), t.alpha.Value()*delta)

	return delta
}

// HandleTerminal implements the agent.PredictionAgent interface
func (t *TDLambda) HandleTerminal(_ []float64) {
	t.trace.Reset()
	parameter.StepAll(t.alpha, t.gamma, t.trace.Lambda())
}
