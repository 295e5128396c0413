package experiment_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/tdcontrol/agent"
	"github.com/samuelfneumann/tdcontrol/agent/control/actorcritic"
	"github.com/samuelfneumann/tdcontrol/agent/control/esarsa"
	"github.com/samuelfneumann/tdcontrol/agent/control/qlearning"
	"github.com/samuelfneumann/tdcontrol/agent/control/qsigma"
	"github.com/samuelfneumann/tdcontrol/agent/prediction"
	"github.com/samuelfneumann/tdcontrol/domain"
	"github.com/samuelfneumann/tdcontrol/domain/gridworld"
	"github.com/samuelfneumann/tdcontrol/experiment"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/policy"
	"github.com/samuelfneumann/tdcontrol/projection"
)

// The shortest path from the bottom left to the top right of a 3 x 5
// grid takes 6 steps, the last of which reaches the goal
var optimal = experiment.Episode{NSteps: 6, TotalReward: -5}

func annealed(init float64) parameter.Config {
	return parameter.NewConfig(parameter.ExponentialConfig{
		Init: init, Floor: 0, Decay: 0.97,
	})
}

func grid() projection.Config {
	return projection.NewConfig(projection.UniformGridConfig{})
}

func config(a agent.Config) experiment.Config {
	return experiment.Config{
		Domain: domain.NewConfig(gridworld.Config{
			Rows:       3,
			Cols:       5,
			Goals:      []gridworld.Cell{{X: 4, Y: 2}},
			StepReward: -1,
		}),
		Agent:        agent.NewTypedConfig(a),
		Episodes:     400,
		StepLimit:    200,
		EvalEpisodes: 2,
		EvalStepCap:  50,
		Seed:         11,
	}
}

func TestConvergesToShortestPath(t *testing.T) {
	agents := map[string]agent.Config{
		"QLearning": qlearning.Config{
			Features:     grid(),
			Epsilon:      annealed(0.5),
			LearningRate: parameter.Fixed(0.5),
			Gamma:        parameter.Fixed(1),
		},
		"ESarsa": esarsa.Config{
			Features:     grid(),
			BehaviourE:   annealed(0.5),
			TargetE:      parameter.Fixed(0),
			LearningRate: parameter.Fixed(0.5),
			Gamma:        parameter.Fixed(1),
		},
		"QSigma": qsigma.Config{
			Features: grid(),
			Behaviour: policy.NewConfig(policy.EpsilonGreedyConfig{
				Epsilon: annealed(0.5),
			}),
			Target:    policy.NewConfig(policy.GreedyConfig{}),
			Alpha:     parameter.Fixed(0.5),
			Gamma:     parameter.Fixed(1),
			Sigma:     parameter.Fixed(0.5),
			Lambda:    parameter.Fixed(0.5),
			Replacing: true,
		},
	}

	for name, a := range agents {
		t.Run(name, func(t *testing.T) {
			result, err := config(a).Run(nil, nil, false)
			require.NoError(t, err)

			require.Len(t, result.Training, 400)
			for _, e := range result.Training {
				assert.LessOrEqual(t, e.NSteps, uint64(200))
			}

			require.Len(t, result.Evaluation, 2)
			for _, e := range result.Evaluation {
				assert.Equal(t, optimal, e)
			}
		})
	}
}

func TestActorCriticRuns(t *testing.T) {
	c := config(actorcritic.Config{
		Features: grid(),
		Policy: policy.NewConfig(policy.BoltzmannConfig{
			Tau: parameter.Fixed(1),
		}),
		Beta:  parameter.Fixed(0.1),
		Gamma: parameter.Fixed(1),
		Critic: prediction.Config{
			Alpha:  parameter.Fixed(0.1),
			Gamma:  parameter.Fixed(1),
			Lambda: parameter.Fixed(0.8),
		},
		PolicyGradient: true,
	})
	c.Episodes = 50

	result, err := c.Run(nil, nil, false)
	require.NoError(t, err)
	assert.Len(t, result.Training, 50)
	for _, e := range result.Evaluation {
		assert.LessOrEqual(t, e.NSteps, uint64(50))
		assert.GreaterOrEqual(t, e.TotalReward, -50.0)
	}
}

func TestConfigJSON(t *testing.T) {
	c := config(qlearning.Config{
		Features:     grid(),
		Epsilon:      annealed(0.5),
		LearningRate: parameter.Fixed(0.5),
		Gamma:        parameter.Fixed(1),
	})

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded experiment.Config
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, c, decoded)
	require.NoError(t, decoded.Validate())

	first, err := c.Run(nil, nil, false)
	require.NoError(t, err)
	second, err := decoded.Run(nil, nil, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConfigValidate(t *testing.T) {
	c := config(qlearning.Config{})
	assert.Error(t, c.Validate())

	c = config(qlearning.Config{
		Features:     grid(),
		Epsilon:      annealed(0.5),
		LearningRate: parameter.Fixed(0.5),
		Gamma:        parameter.Fixed(1),
	})
	c.StepLimit = 0
	assert.Error(t, c.Validate())

	c.StepLimit = 1
	c.Domain = domain.Config{}
	_, err := c.Run(nil, nil, false)
	assert.Error(t, err)
}
