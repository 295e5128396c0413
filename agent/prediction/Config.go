package prediction

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/agent"
	"github.com/samuelfneumann/tdcontrol/fa"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/projection"
	"github.com/samuelfneumann/tdcontrol/trace"
	"github.com/samuelfneumann/tdcontrol/utils/matutils/initializers/weights"
)

// Config describes a critic. A Config without Lambda describes a TD
// agent; with Lambda it describes a TDLambda agent, which requires a
// projection producing dense features.
type Config struct {
	Alpha     parameter.Config
	Gamma     parameter.Config
	Lambda    parameter.Config
	Replacing bool

	// InitWeights is the initial value of every weight
	InitWeights float64
}

// Validate returns an error if the Config cannot describe a critic
func (c Config) Validate() error {
	if c.Alpha.Creator == nil {
		return fmt.Errorf("validate: critic α must be set")
	}
	if c.Gamma.Creator == nil {
		return fmt.Errorf("validate: critic γ must be set")
	}
	return nil
}

// Create returns the critic described by the Config over the features
// of p
func (c Config) Create(p projection.Base) (agent.PredictionAgent, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	alpha, err := c.Alpha.Create()
	if err != nil {
		return nil, fmt.Errorf("create: α: %v", err)
	}
	gamma, err := c.Gamma.Create()
	if err != nil {
		return nil, fmt.Errorf("create: γ: %v", err)
	}

	if c.Lambda.Creator == nil {
		v, err := fa.New(p, 1)
		if err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}
		if err := fa.Initialize(v, weights.Constant(c.InitWeights)); err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}

		td, err := NewTD(v, alpha, gamma)
		if err != nil {
			return nil, err
		}
		return td, nil
	}

	proj, ok := p.(projection.Projection)
	if !ok {
		return nil, fmt.Errorf("create: TD(λ) requires dense features: "+
			"have(%T)", p)
	}
	v, err := fa.NewLinear(proj, 1)
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	weights.Constant(c.InitWeights).Initialize(v.Weights())

	lambda, err := c.Lambda.Create()
	if err != nil {
		return nil, fmt.Errorf("create: λ: %v", err)
	}
	tr, err := trace.New(lambda, v.NumFeatures(), c.Replacing)
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	tdl, err := NewTDLambda(v, tr, alpha, gamma)
	if err != nil {
		return nil, err
	}
	return tdl, nil
}
