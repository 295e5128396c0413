package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/agent"
	"github.com/samuelfneumann/tdcontrol/domain"
	"github.com/samuelfneumann/tdcontrol/fa"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/projection"
	"github.com/samuelfneumann/tdcontrol/utils/matutils/initializers/weights"
)

func init() {
	// Register the Config type so that it can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.QLearning, Config{})
}

// Config represents a configuration for the QLearning agent
type Config struct {
	Features     projection.Config
	Epsilon      parameter.Config // epsilon for behaviour policy
	LearningRate parameter.Config
	Gamma        parameter.Config

	// InitWeights is the initial value of every weight, optimistic
	// when positive
	InitWeights float64
}

// CreateAgent creates the agent from the Config. Hashed tile coding
// features result in an action-value function which hashes the action
// with the state.
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

	epsilon, err := c.Epsilon.Create()
	if err != nil {
		return nil, fmt.Errorf("createAgent: ε: %v", err)
	}
	learningRate, err := c.LearningRate.Create()
	if err != nil {
		return nil, fmt.Errorf("createAgent: learning rate: %v", err)
	}
	gamma, err := c.Gamma.Create()
	if err != nil {
		return nil, fmt.Errorf("createAgent: γ: %v", err)
	}

	ql, err := New(q, epsilon, learningRate, gamma, seed)
	if err != nil {
		return nil, err
	}
	return ql, nil
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Features.Creator == nil {
		return fmt.Errorf("validate: features must be set")
	}
	if c.Epsilon.Creator == nil {
		return fmt.Errorf("validate: epsilon must be set")
	}
	if c.LearningRate.Creator == nil || c.Gamma.Creator == nil {
		return fmt.Errorf("validate: learning rate and γ must be set")
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.QLearning
}
