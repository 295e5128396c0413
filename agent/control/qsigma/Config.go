package qsigma

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/agent"
	"github.com/samuelfneumann/tdcontrol/domain"
	"github.com/samuelfneumann/tdcontrol/fa"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/policy"
	"github.com/samuelfneumann/tdcontrol/projection"
	"github.com/samuelfneumann/tdcontrol/trace"
	"github.com/samuelfneumann/tdcontrol/utils/matutils/initializers/weights"
)

func init() {
	agent.Register(agent.QSigma, Config{})
}

// Config implements a configuration for a QSigma agent. The features
// must be dense.
type Config struct {
	Features  projection.Config
	Behaviour policy.Config
	Target    policy.Config

	Alpha  parameter.Config
	Gamma  parameter.Config
	Sigma  parameter.Config // degree of sampling, in [0, 1]
	Lambda parameter.Config // shared by the traces of every action

	Replacing   bool
	InitWeights float64
}

// CreateAgent creates a QSigma agent acting in domains like d
func (c Config) CreateAgent(d domain.Domain, seed uint64) (agent.ControlAgent,
	error) {
	nActions, err := domain.NumActions(d)
	if err != nil {
		return nil, fmt.Errorf("createAgent: %v", err)
	}
	base, err := c.Features.Create(d.StateSpace(), seed)
	if err != nil {
		return nil, fmt.Errorf("createAgent: features: %v", err)
	}
	proj, ok := base.(projection.Projection)
	if !ok {
		return nil, fmt.Errorf("createAgent: features must be dense: "+
			"have(%T)", base)
	}

	q, err := fa.NewLinear(proj, nActions)
	if err != nil {
		return nil, fmt.Errorf("createAgent: %v", err)
	}
	weights.Constant(c.InitWeights).Initialize(q.Weights())

	behaviour, err := c.Behaviour.Create()
	if err != nil {
		return nil, fmt.Errorf("createAgent: behaviour: %v", err)
	}
	target, err := c.Target.Create()
	if err != nil {
		return nil, fmt.Errorf("createAgent: target: %v", err)
	}

	params := make([]parameter.Parameter, 4)
	configs := []parameter.Config{c.Alpha, c.Gamma, c.Sigma, c.Lambda}
	for i, pc := range configs {
		if params[i], err = pc.Create(); err != nil {
			return nil, fmt.Errorf("createAgent: %v", err)
		}
	}

	traces := make([]trace.Trace, nActions)
	for a := range traces {
		if traces[a], err = trace.New(params[3], q.NumFeatures(),
			c.Replacing); err != nil {
			return nil, fmt.Errorf("createAgent: %v", err)
		}
	}

	qs, err := New(q, traces, behaviour, target, params[0], params[1],
		params[2], seed)
	if err != nil {
		return nil, err
	}
	return qs, nil
}

// Validate checks a Config to ensure it is a valid configuration
func (c Config) Validate() error {
	if c.Features.Creator == nil {
		return fmt.Errorf("validate: features must be set")
	}
	if c.Behaviour.Creator == nil || c.Target.Creator == nil {
		return fmt.Errorf("validate: behaviour and target policies must " +
			"be set")
	}
	for name, pc := range map[string]parameter.Config{
		"α": c.Alpha, "γ": c.Gamma, "σ": c.Sigma, "λ": c.Lambda,
	} {
		if pc.Creator == nil {
			return fmt.Errorf("validate: %s must be set", name)
		}
	}
	return nil
}

// Type returns the type of agent the Config describes
func (c Config) Type() agent.Type {
	return agent.QSigma
}
