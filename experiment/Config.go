package experiment

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/agent"
	"github.com/samuelfneumann/tdcontrol/domain"
)

// Config represents a configuration of an experiment: an agent trained
// in a domain, followed by greedy evaluation episodes.
type Config struct {
	Domain domain.Config
	Agent  agent.TypedConfig

	Episodes  int    // number of training episodes
	StepLimit uint64 // maximum length of a training episode

	EvalEpisodes int    // number of evaluation episodes after training
	EvalStepCap  uint64 // maximum length of an evaluation episode, 0 for none

	Seed uint64
}

// Validate returns an error describing why the Config is invalid, or
// nil if it is valid
func (c Config) Validate() error {
	if c.Domain.Creator == nil {
		return fmt.Errorf("validate: domain must be set")
	}
	if c.Agent.Config == nil {
		return fmt.Errorf("validate: agent must be set")
	}
	if c.Episodes < 0 || c.EvalEpisodes < 0 {
		return fmt.Errorf("validate: number of episodes cannot be negative")
	}
	if c.StepLimit == 0 {
		return fmt.Errorf("validate: step limit must be positive")
	}
	return c.Agent.Validate()
}

// Result holds the episodes of an experiment
type Result struct {
	Training   []Episode
	Evaluation []Episode
}

// Run runs the experiment described by the Config. Training episodes
// are passed to training and evaluation episodes to evaluation; either
// Logger may be nil.
func (c Config) Run(training, evaluation Logger,
	showProgress bool) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, fmt.Errorf("run: %v", err)
	}

	factory, err := c.Domain.Create(c.Seed)
	if err != nil {
		return Result{}, fmt.Errorf("run: could not create domain: %v", err)
	}
	a, err := c.Agent.CreateAgent(factory(), c.Seed)
	if err != nil {
		return Result{}, fmt.Errorf("run: could not create agent: %v", err)
	}

	train, err := NewSerialExperiment(a, factory, c.StepLimit)
	if err != nil {
		return Result{}, fmt.Errorf("run: %v", err)
	}
	eval, err := NewEvaluation(a, factory, c.EvalStepCap)
	if err != nil {
		return Result{}, fmt.Errorf("run: %v", err)
	}

	return Result{
		Training:   Run(train, c.Episodes, training, showProgress),
		Evaluation: Run(eval, c.EvalEpisodes, evaluation, false),
	}, nil
}
