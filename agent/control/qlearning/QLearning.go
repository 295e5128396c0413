// Package qlearning implements the Q-Learning algorithm.
//
// The Q-Learning algorithm is a special case of the Expected Sarsa
// algorithm. This package implements the same functionality as the
// esarsa package with a greedy target policy, but bootstraps directly
// off the maximum action value.
package qlearning

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/tdcontrol/fa"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/policy"
	"github.com/samuelfneumann/tdcontrol/timestep"
)

// QLearning implements the one-step Q-Learning algorithm with an
// ε-greedy behaviour policy
type QLearning struct {
	q         fa.QFunction
	behaviour *policy.EpsilonGreedy
	target    policy.Greedy

	learningRate parameter.Parameter
	gamma        parameter.Parameter
	rng          *rand.Rand
}

// New creates a new QLearning agent learning q
func New(q fa.QFunction, epsilon, learningRate, gamma parameter.Parameter,
	seed uint64) (*QLearning, error) {
	if q == nil {
		return nil, fmt.Errorf("new: action-value function cannot be nil")
	}
	if learningRate == nil || gamma == nil {
		return nil, fmt.Errorf("new: learning rate and γ cannot be nil")
	}
	behaviour, err := policy.NewEpsilonGreedy(epsilon)
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	return &QLearning{
		q:            q,
		behaviour:    behaviour,
		target:       policy.NewGreedy(),
		learningRate: learningRate,
		gamma:        gamma,
		rng:          rand.New(rand.NewSource(seed)),
	}, nil
}

// QFunction returns the action-value function learned by the agent
func (q *QLearning) QFunction() fa.QFunction {
	return q.q
}

// Pi implements the agent.ControlAgent interface
func (q *QLearning) Pi(s []float64) int {
	return q.behaviour.Sample(q.rng, q.q.EvaluateAll(s))
}

// PiTarget implements the agent.ControlAgent interface
func (q *QLearning) PiTarget(s []float64) int {
	return q.target.Sample(q.rng, q.q.EvaluateAll(s))
}

// EvaluatePolicy implements the agent.ControlAgent interface
func (q *QLearning) EvaluatePolicy(p policy.Policy, s []float64) int {
	return p.Sample(q.rng, q.q.EvaluateAll(s))
}

// HandleTransition implements the agent.ControlAgent interface
func (q *QLearning) HandleTransition(t timestep.Transition) {
	target := t.Reward
	if !t.Terminal() {
		target += q.gamma.Value() * floats.Max(q.q.EvaluateAll(t.To.State))
	}

	s := t.From.State
	currentEstimate := q.q.EvaluateAction(s, t.Action)
	q.q.UpdateAction(s, t.Action,
		q.learningRate.Value()*(target-currentEstimate))
}

// HandleTerminal implements the agent.ControlAgent interface
func (q *QLearning) HandleTerminal(_ []float64) {
	q.behaviour.HandleTerminal()
	parameter.StepAll(q.learningRate, q.gamma)
}
