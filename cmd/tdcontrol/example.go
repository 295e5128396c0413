package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/tdcontrol/agent"
	"github.com/samuelfneumann/tdcontrol/agent/control/qlearning"
	"github.com/samuelfneumann/tdcontrol/domain"
	"github.com/samuelfneumann/tdcontrol/domain/gridworld"
	"github.com/samuelfneumann/tdcontrol/experiment"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/projection"
)

// exampleConfig is tabular Q-learning with a decaying exploration rate
// on a small goal-reaching gridworld
func exampleConfig() experiment.Config {
	return experiment.Config{
		Domain: domain.NewConfig(gridworld.Config{
			Rows:       5,
			Cols:       5,
			Goals:      []gridworld.Cell{{X: 4, Y: 4}},
			StepReward: -1,
		}),
		Agent: agent.NewTypedConfig(qlearning.Config{
			Features: projection.NewConfig(projection.UniformGridConfig{}),
			Epsilon: parameter.NewConfig(parameter.ExponentialConfig{
				Init: 0.5, Floor: 0.01, Decay: 0.99,
			}),
			LearningRate: parameter.Fixed(0.5),
			Gamma:        parameter.Fixed(1),
		}),
		Episodes:     500,
		StepLimit:    1000,
		EvalEpisodes: 5,
		EvalStepCap:  100,
		Seed:         1,
	}
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example experiment configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := json.MarshalIndent(exampleConfig(), "", "  ")
			if err != nil {
				return fmt.Errorf("example: %v", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
