// Package qsigma implements the Q(σ, λ) control algorithm with linear
// function approximation
package qsigma

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/tdcontrol/fa"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/policy"
	"github.com/samuelfneumann/tdcontrol/timestep"
	"github.com/samuelfneumann/tdcontrol/trace"
)

// QSigma implements Q(σ, λ). The degree of sampling σ interpolates
// between Sarsa(λ) at σ = 1, which bootstraps off the sampled next
// action, and Tree Backup(λ) at σ = 0, which bootstraps off the
// expectation of the target policy.
//
// Each action has its own eligibility trace over the features of the
// action-value function. The action sampled in the next state to form
// the update target is the action the agent takes in that state.
type QSigma struct {
	q         fa.LinearFunction
	traces    []trace.Trace
	behaviour policy.Policy
	target    policy.Policy

	alpha parameter.Parameter
	gamma parameter.Parameter
	sigma parameter.Parameter
	rng   *rand.Rand

	// The next action sampled in the last update, and the state it
	// was sampled in
	next      int
	nextState []float64
}

// New returns a new QSigma agent. The traces slice must hold one trace
// per action, each with one entry per feature of q.
func New(q fa.LinearFunction, traces []trace.Trace, behaviour,
	target policy.Policy, alpha, gamma, sigma parameter.Parameter,
	seed uint64) (*QSigma, error) {
	if q == nil {
		return nil, fmt.Errorf("new: action-value function cannot be nil")
	}
	if len(traces) != q.NumActions() {
		return nil, fmt.Errorf("new: must have one trace per action "+
			"\n\twant(%d) \n\thave(%d)", q.NumActions(), len(traces))
	}
	for i, tr := range traces {
		if tr == nil {
			return nil, fmt.Errorf("new: trace %d cannot be nil", i)
		}
		if n := tr.Get().Len(); n != q.NumFeatures() {
			return nil, fmt.Errorf("new: trace %d size does not match "+
				"number of features \n\twant(%d) \n\thave(%d)", i,
				q.NumFeatures(), n)
		}
	}
	if behaviour == nil || target == nil {
		return nil, fmt.Errorf("new: policies cannot be nil")
	}
	if alpha == nil || gamma == nil || sigma == nil {
		return nil, fmt.Errorf("new: α, γ, and σ cannot be nil")
	}
	if s := sigma.Value(); s < 0 || s > 1 {
		return nil, fmt.Errorf("new: σ must be in [0, 1]: have(%v)", s)
	}

	return &QSigma{
		q:         q,
		traces:    traces,
		behaviour: behaviour,
		target:    target,
		alpha:     alpha,
		gamma:     gamma,
		sigma:     sigma,
		rng:       rand.New(rand.NewSource(seed)),
	}, nil
}

// QFunction returns the action-value function learned by the agent
func (q *QSigma) QFunction() fa.LinearFunction {
	return q.q
}

// Traces returns the eligibility traces of the agent, indexed by
// action
func (q *QSigma) Traces() []trace.Trace {
	return q.traces
}

// Pi implements the agent.ControlAgent interface. If s is the state in
// which the last update sampled its next action, that action is
// returned. Otherwise a fresh action is sampled from the behaviour
// policy.
func (q *QSigma) Pi(s []float64) int {
	if q.nextState != nil && floats.Equal(q.nextState, s) {
		q.nextState = nil
		return q.next
	}
	return q.behaviour.Sample(q.rng, q.q.EvaluateAll(s))
}

// PiTarget implements the agent.ControlAgent interface
func (q *QSigma) PiTarget(s []float64) int {
	return q.target.Sample(q.rng, q.q.EvaluateAll(s))
}

// EvaluatePolicy implements the agent.ControlAgent interface
func (q *QSigma) EvaluatePolicy(p policy.Policy, s []float64) int {
	return p.Sample(q.rng, q.q.EvaluateAll(s))
}

// HandleTransition implements the agent.ControlAgent interface
func (q *QSigma) HandleTransition(t timestep.Transition) {
	gamma := q.gamma.Value()
	sigma := q.sigma.Value()
	a := t.Action

	phi := q.q.Phi(t.From.State)
	qs := q.q.EvaluateAllPhi(phi)

	target := t.Reward
	if !t.Terminal() {
		nextQs := q.q.EvaluateAll(t.To.State)
		next := q.behaviour.Sample(q.rng, nextQs)
		q.next, q.nextState = next, append(q.nextState[:0], t.To.State...)

		expected := floats.Dot(q.target.Probabilities(nextQs), nextQs)
		target += gamma * (sigma*nextQs[next] + (1-sigma)*expected)
	} else {
		q.nextState = nil
	}
	delta := target - qs[a]

	decay := gamma * (sigma + (1-sigma)*q.target.Probabilities(qs)[a])
	for _, tr := range q.traces {
		tr.Decay(decay)
	}
	q.traces[a].Update(phi)

	step := q.alpha.Value() * delta
	for b, tr := range q.traces {
		q.q.UpdateActionPhi(tr.Get(), b, step)
	}
}

// HandleTerminal implements the agent.ControlAgent interface. Traces
// are reset and the policies handle the terminal, then α, γ, σ and
// each trace's λ are stepped.
func (q *QSigma) HandleTerminal(_ []float64) {
	q.nextState = nil
	for _, tr := range q.traces {
		tr.Reset()
	}

	q.behaviour.HandleTerminal()
	q.target.HandleTerminal()
	parameter.StepAll(q.alpha, q.gamma, q.sigma)
	stepLambdas(q.traces)
}

// stepLambdas steps the λ of each trace once, even when traces share
// a single λ
func stepLambdas(traces []trace.Trace) {
	seen := make(map[parameter.Parameter]bool, len(traces))
	for _, tr := range traces {
		l := tr.Lambda()
		if !seen[l] {
			seen[l] = true
			l.Step()
		}
	}
}
