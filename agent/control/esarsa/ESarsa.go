// Package esarsa implements the Expected Sarsa algorithm
package esarsa

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/tdcontrol/fa"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/policy"
	"github.com/samuelfneumann/tdcontrol/timestep"
)

// ESarsa implements the one-step Expected Sarsa algorithm. The update
// target is the expectation of the next action value under the target
// policy. With a target policy equal to the behaviour policy the
// algorithm is on-policy.
type ESarsa struct {
	q         fa.QFunction
	behaviour policy.Policy
	target    policy.Policy

	learningRate parameter.Parameter
	gamma        parameter.Parameter
	rng          *rand.Rand
}

// New creates a new ESarsa agent learning q
func New(q fa.QFunction, behaviour, target policy.Policy, learningRate,
	gamma parameter.Parameter, seed uint64) (*ESarsa, error) {
	if q == nil {
		return nil, fmt.Errorf("new: action-value function cannot be nil")
	}
	if behaviour == nil || target == nil {
		return nil, fmt.Errorf("new: policies cannot be nil")
	}
	if learningRate == nil || gamma == nil {
		return nil, fmt.Errorf("new: learning rate and γ cannot be nil")
	}

	return &ESarsa{
		q:            q,
		behaviour:    behaviour,
		target:       target,
		learningRate: learningRate,
		gamma:        gamma,
		rng:          rand.New(rand.NewSource(seed)),
	}, nil
}

// QFunction returns the action-value function learned by the agent
func (e *ESarsa) QFunction() fa.QFunction {
	return e.q
}

// Pi implements the agent.ControlAgent interface
func (e *ESarsa) Pi(s []float64) int {
	return e.behaviour.Sample(e.rng, e.q.EvaluateAll(s))
}

// PiTarget implements the agent.ControlAgent interface
func (e *ESarsa) PiTarget(s []float64) int {
	return e.target.Sample(e.rng, e.q.EvaluateAll(s))
}

// EvaluatePolicy implements the agent.ControlAgent interface
func (e *ESarsa) EvaluatePolicy(p policy.Policy, s []float64) int {
	return p.Sample(e.rng, e.q.EvaluateAll(s))
}

// HandleTransition implements the agent.ControlAgent interface
func (e *ESarsa) HandleTransition(t timestep.Transition) {
	target := t.Reward
	if !t.Terminal() {
		actionValues := e.q.EvaluateAll(t.To.State)
		targetProbs := e.target.Probabilities(actionValues)
		target += e.gamma.Value() * floats.Dot(targetProbs, actionValues)
	}

	s := t.From.State
	currentEstimate := e.q.EvaluateAction(s, t.Action)
	e.q.UpdateAction(s, t.Action,
		e.learningRate.Value()*(target-currentEstimate))
}

// HandleTerminal implements the agent.ControlAgent interface
func (e *ESarsa) HandleTerminal(_ []float64) {
	e.behaviour.HandleTerminal()
	if e.target != e.behaviour {
		e.target.HandleTerminal()
	}
	parameter.StepAll(e.learningRate, e.gamma)
}
