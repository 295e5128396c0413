package esarsa

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/agent"
	"github.com/samuelfneumann/tdcontrol/domain"
	"github.com/samuelfneumann/tdcontrol/fa"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/policy"
	"github.com/samuelfneumann/tdcontrol/projection"
	"github.com/samuelfneumann/tdcontrol/utils/matutils/initializers/weights"
)

func init() {
	agent.Register(agent.ESarsa, Config{})
}

// Config represents a configuration for the ESarsa agent. The
// behaviour and target policies are both ε-greedy.
type Config struct {
	Features     projection.Config
	BehaviourE   parameter.Config // epsilon for behaviour policy
	TargetE      parameter.Config // epsilon for target policy
	LearningRate parameter.Config
	Gamma        parameter.Config

	InitWeights float64
}

// CreateAgent creates the agent from the Config
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
	q, err := fa.NewActionValue(proj, nActions)
	if err != nil {
		return nil, fmt.Errorf("createAgent: %v", err)
	}
	if err := fa.Initialize(q, weights.Constant(c.InitWeights)); err != nil {
		return nil, fmt.Errorf("createAgent: %v", err)
	}

	behaviour, err := policy.EpsilonGreedyConfig{Epsilon: c.BehaviourE}.Create()
	if err != nil {
		return nil, fmt.Errorf("createAgent: behaviour: %v", err)
	}
	target, err := policy.EpsilonGreedyConfig{Epsilon: c.TargetE}.Create()
	if err != nil {
		return nil, fmt.Errorf("createAgent: target: %v", err)
	}
	learningRate, err := c.LearningRate.Create()
	if err != nil {
		return nil, fmt.Errorf("createAgent: learning rate: %v", err)
	}
	gamma, err := c.Gamma.Create()
	if err != nil {
		return nil, fmt.Errorf("createAgent: γ: %v", err)
	}

	e, err := New(q, behaviour, target, learningRate, gamma, seed)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Features.Creator == nil {
		return fmt.Errorf("validate: features must be set")
	}
	if c.BehaviourE.Creator == nil || c.TargetE.Creator == nil {
		return fmt.Errorf("validate: behaviour and target epsilon must " +
			"be set")
	}
	if c.LearningRate.Creator == nil || c.Gamma.Creator == nil {
		return fmt.Errorf("validate: learning rate and γ must be set")
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.ESarsa
}
