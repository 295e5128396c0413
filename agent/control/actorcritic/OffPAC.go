package actorcritic

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/tdcontrol/fa"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/policy"
	"github.com/samuelfneumann/tdcontrol/timestep"
)

// OffPAC is an off-policy actor-critic agent. Actions are selected by
// a behaviour policy over the actor's preferences while the agent
// learns about the greedy policy. Both the actor and the critic
// updates are weighted by the importance sampling ratio
//
//	ρ = π_greedy(a|s) / π_b(a|s)
//
// so that transitions the greedy policy would not take do not change
// the agent.
type OffPAC struct {
	actor     fa.QFunction
	critic    fa.VFunction
	behaviour policy.Policy
	target    policy.Greedy

	alpha parameter.Parameter // critic step size
	beta  parameter.Parameter // actor step size
	gamma parameter.Parameter
	rng   *rand.Rand
}

// NewOffPAC returns a new OffPAC agent
func NewOffPAC(actor fa.QFunction, critic fa.VFunction,
	behaviour policy.Policy, alpha, beta, gamma parameter.Parameter,
	seed uint64) (*OffPAC, error) {
	if actor == nil {
		return nil, fmt.Errorf("newOffPAC: actor cannot be nil")
	}
	if critic == nil {
		return nil, fmt.Errorf("newOffPAC: critic cannot be nil")
	}
	if behaviour == nil {
		return nil, fmt.Errorf("newOffPAC: behaviour policy cannot be nil")
	}
	if alpha == nil || beta == nil || gamma == nil {
		return nil, fmt.Errorf("newOffPAC: α, β, and γ cannot be nil")
	}

	return &OffPAC{
		actor:     actor,
		critic:    critic,
		behaviour: behaviour,
		target:    policy.NewGreedy(),
		alpha:     alpha,
		beta:      beta,
		gamma:     gamma,
		rng:       rand.New(rand.NewSource(seed)),
	}, nil
}

// Actor returns the action preferences of the agent
func (o *OffPAC) Actor() fa.QFunction {
	return o.actor
}

// Critic returns the state-value function of the agent
func (o *OffPAC) Critic() fa.VFunction {
	return o.critic
}

// Pi implements the agent.ControlAgent interface
func (o *OffPAC) Pi(s []float64) int {
	return o.behaviour.Sample(o.rng, o.actor.EvaluateAll(s))
}

// PiTarget implements the agent.ControlAgent interface
func (o *OffPAC) PiTarget(s []float64) int {
	return o.target.Sample(o.rng, o.actor.EvaluateAll(s))
}

// EvaluatePolicy implements the agent.ControlAgent interface
func (o *OffPAC) EvaluatePolicy(p policy.Policy, s []float64) int {
	return p.Sample(o.rng, o.actor.EvaluateAll(s))
}

// Rho returns the importance sampling ratio of taking action a in
// state s
func (o *OffPAC) Rho(s []float64, a int) float64 {
	qs := o.actor.EvaluateAll(s)
	b := o.behaviour.Probabilities(qs)[a]
	if b == 0 {
		return 0
	}
	return o.target.Probabilities(qs)[a] / b
}

// HandleTransition implements the agent.ControlAgent interface
func (o *OffPAC) HandleTransition(t timestep.Transition) {
	s := t.From.State

	target := t.Reward
	if !t.Terminal() {
		target += o.gamma.Value() * o.critic.Evaluate(t.To.State)
	}
	delta := target - o.critic.Evaluate(s)

	rho := o.Rho(s, t.Action)
	if rho == 0 {
		return
	}

	o.actor.UpdateAction(s, t.Action, o.beta.Value()*rho*delta)
	o.critic.Update(s, o.alpha.Value()*rho*delta)
}

// HandleTerminal implements the agent.ControlAgent interface. The
// behaviour policy handles the terminal first, then α, β, and γ are
// stepped.
func (o *OffPAC) HandleTerminal(_ []float64) {
	o.behaviour.HandleTerminal()
	parameter.StepAll(o.alpha, o.beta, o.gamma)
}
