package actorcritic

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/agent"
	"github.com/samuelfneumann/tdcontrol/agent/prediction"
	"github.com/samuelfneumann/tdcontrol/domain"
	"github.com/samuelfneumann/tdcontrol/fa"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/policy"
	"github.com/samuelfneumann/tdcontrol/projection"
	"github.com/samuelfneumann/tdcontrol/utils/matutils/initializers/weights"
)

func init() {
	agent.Register(agent.ActorCritic, Config{})
	agent.Register(agent.OffPAC, OffPACConfig{})
}

// Config implements a configuration for an ActorCritic agent
type Config struct {
	Features projection.Config
	Policy   policy.Config
	Beta     parameter.Config // actor step size
	Gamma    parameter.Config
	Critic   prediction.Config

	// PolicyGradient moves the actor along ∇ log π, which requires a
	// differentiable policy
	PolicyGradient bool

	// InitWeights is the initial value of every action preference
	InitWeights float64
}

// CreateAgent creates an ActorCritic agent acting in domains like d
func (c Config) CreateAgent(d domain.Domain, seed uint64) (agent.ControlAgent,
	error) {
	nActions, err := domain.NumActions(d)
	if err != nil {
		return nil, fmt.Errorf("createAgent: %v", err)
	}
	proj, err := c.Features.Create(d.StateSpace(), seed)
	if err != nil {
		return nil, fmt.Errorf("createAgent: features: %v", err)
	}

	actor, err := fa.New(proj, nActions)
	if err != nil {
		return nil, fmt.Errorf("createAgent: actor: %v", err)
	}
	if err := fa.Initialize(actor, weights.Constant(c.InitWeights)); err != nil {
		return nil, fmt.Errorf("createAgent: actor: %v", err)
	}

	critic, err := c.Critic.Create(proj)
	if err != nil {
		return nil, fmt.Errorf("createAgent: critic: %v", err)
	}
	p, err := c.Policy.Create()
	if err != nil {
		return nil, fmt.Errorf("createAgent: policy: %v", err)
	}
	beta, err := c.Beta.Create()
	if err != nil {
		return nil, fmt.Errorf("createAgent: β: %v", err)
	}
	gamma, err := c.Gamma.Create()
	if err != nil {
		return nil, fmt.Errorf("createAgent: γ: %v", err)
	}

	ac, err := New(actor, critic, p, beta, gamma, c.PolicyGradient, seed)
	if err != nil {
		return nil, err
	}
	return ac, nil
}

// Validate checks a Config to ensure it is a valid configuration
func (c Config) Validate() error {
	if c.Features.Creator == nil {
		return fmt.Errorf("validate: features must be set")
	}
	if c.Policy.Creator == nil {
		return fmt.Errorf("validate: policy must be set")
	}
	if c.Beta.Creator == nil || c.Gamma.Creator == nil {
		return fmt.Errorf("validate: β and γ must be set")
	}
	return c.Critic.Validate()
}

// Type returns the type of agent the Config describes
func (c Config) Type() agent.Type {
	return agent.ActorCritic
}

// OffPACConfig implements a configuration for an OffPAC agent
type OffPACConfig struct {
	Features  projection.Config
	Behaviour policy.Config
	Alpha     parameter.Config // critic step size
	Beta      parameter.Config // actor step size
	Gamma     parameter.Config

	InitWeights float64
}

// CreateAgent creates an OffPAC agent acting in domains like d
func (c OffPACConfig) CreateAgent(d domain.Domain,
	seed uint64) (agent.ControlAgent, error) {
	nActions, err := domain.NumActions(d)
	if err != nil {
		return nil, fmt.Errorf("createAgent: %v", err)
	}
	proj, err := c.Features.Create(d.StateSpace(), seed)
	if err != nil {
		return nil, fmt.Errorf("createAgent: features: %v", err)
	}

	actor, err := fa.New(proj, nActions)
	if err != nil {
		return nil, fmt.Errorf("createAgent: actor: %v", err)
	}
	if err := fa.Initialize(actor, weights.Constant(c.InitWeights)); err != nil {
		return nil, fmt.Errorf("createAgent: actor: %v", err)
	}
	critic, err := fa.New(proj, 1)
	if err != nil {
		return nil, fmt.Errorf("createAgent: critic: %v", err)
	}

	behaviour, err := c.Behaviour.Create()
	if err != nil {
		return nil, fmt.Errorf("createAgent: behaviour: %v", err)
	}
	params := make([]parameter.Parameter, 3)
	for i, pc := range []parameter.Config{c.Alpha, c.Beta, c.Gamma} {
		if params[i], err = pc.Create(); err != nil {
			return nil, fmt.Errorf("createAgent: %v", err)
		}
	}

	o, err := NewOffPAC(actor, critic, behaviour, params[0], params[1],
		params[2], seed)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks a Config to ensure it is a valid configuration
func (c OffPACConfig) Validate() error {
	if c.Features.Creator == nil {
		return fmt.Errorf("validate: features must be set")
	}
	if c.Behaviour.Creator == nil {
		return fmt.Errorf("validate: behaviour policy must be set")
	}
	if c.Alpha.Creator == nil || c.Beta.Creator == nil ||
		c.Gamma.Creator == nil {
		return fmt.Errorf("validate: α, β, and γ must be set")
	}
	return nil
}

// Type returns the type of agent the Config describes
func (c OffPACConfig) Type() agent.Type {
	return agent.OffPAC
}
