// Package actorcritic implements linear actor-critic control agents
package actorcritic

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/tdcontrol/agent"
	"github.com/samuelfneumann/tdcontrol/fa"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/policy"
	"github.com/samuelfneumann/tdcontrol/timestep"
)

// ActorCritic is an on-policy actor-critic agent. The actor holds the
// action preferences which the policy turns into action probabilities,
// and the critic supplies the TD error which drives the actor.
//
// The TD error is discounted by the critic's own γ. The agent's gamma
// does not enter any update; it is only stepped on terminal alongside
// β so that a discount schedule configured for the agent advances once
// per episode.
type ActorCritic struct {
	actor  fa.QFunction
	critic agent.PredictionAgent
	policy policy.Policy
	greedy policy.Greedy
	beta   parameter.Parameter
	gamma  parameter.Parameter
	rng    *rand.Rand

	// Whether the actor follows ∇ log π rather than nudging only the
	// preference of the action taken
	gradient bool
}

// New returns a new ActorCritic agent. If gradient is true, the policy
// must be a policy.DifferentiablePolicy and every action preference is
// moved along the gradient of the log-probability of the action taken.
// Otherwise, only the preference of the action taken is moved, by β
// times the TD error.
func New(actor fa.QFunction, critic agent.PredictionAgent, p policy.Policy,
	beta, gamma parameter.Parameter, gradient bool,
	seed uint64) (*ActorCritic, error) {
	if actor == nil {
		return nil, fmt.Errorf("new: actor cannot be nil")
	}
	if critic == nil {
		return nil, fmt.Errorf("new: critic cannot be nil")
	}
	if p == nil {
		return nil, fmt.Errorf("new: policy cannot be nil")
	}
	if beta == nil || gamma == nil {
		return nil, fmt.Errorf("new: β and γ cannot be nil")
	}
	if _, ok := p.(policy.DifferentiablePolicy); gradient && !ok {
		return nil, fmt.Errorf("new: policy gradient requires a "+
			"differentiable policy: have(%T)", p)
	}

	return &ActorCritic{
		actor:    actor,
		critic:   critic,
		policy:   p,
		greedy:   policy.NewGreedy(),
		beta:     beta,
		gamma:    gamma,
		rng:      rand.New(rand.NewSource(seed)),
		gradient: gradient,
	}, nil
}

// Actor returns the action preferences of the agent
func (a *ActorCritic) Actor() fa.QFunction {
	return a.actor
}

// Critic returns the critic of the agent
func (a *ActorCritic) Critic() agent.PredictionAgent {
	return a.critic
}

// Pi implements the agent.ControlAgent interface
func (a *ActorCritic) Pi(s []float64) int {
	return a.policy.Sample(a.rng, a.actor.EvaluateAll(s))
}

// PiTarget implements the agent.ControlAgent interface. It returns the
// action with the largest preference, first index on ties.
func (a *ActorCritic) PiTarget(s []float64) int {
	return a.EvaluatePolicy(a.greedy, s)
}

// EvaluatePolicy implements the agent.ControlAgent interface
func (a *ActorCritic) EvaluatePolicy(p policy.Policy, s []float64) int {
	return p.Sample(a.rng, a.actor.EvaluateAll(s))
}

// HandleTransition implements the agent.ControlAgent interface
func (a *ActorCritic) HandleTransition(t timestep.Transition) {
	delta := a.critic.HandleTransition(t)
	step := a.beta.Value() * delta

	s := t.From.State
	if !a.gradient {
		a.actor.UpdateAction(s, t.Action, step)
		return
	}

	grad := a.policy.(policy.DifferentiablePolicy).Grad(
		a.actor.EvaluateAll(s), t.Action)
	for i := range grad {
		grad[i] *= step
	}
	a.actor.UpdateAll(s, grad)
}

// HandleTerminal implements the agent.ControlAgent interface. The
// critic handles the terminal first, then the policy, then β and γ
// are stepped.
func (a *ActorCritic) HandleTerminal(s []float64) {
	a.critic.HandleTerminal(s)
	a.policy.HandleTerminal()
	parameter.StepAll(a.beta, a.gamma)
}
