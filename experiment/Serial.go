package experiment

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/agent"
	"github.com/samuelfneumann/tdcontrol/domain"
)

// SerialExperiment trains an agent for one episode each time Next is
// called. Each episode runs in a fresh domain from the factory and
// lasts until a terminal observation or the step limit, whichever
// comes first. In both cases the agent's HandleTerminal is called with
// the last state of the episode, so traces never carry over between
// episodes.
type SerialExperiment struct {
	agent     agent.ControlAgent
	factory   domain.Factory
	stepLimit uint64
}

// NewSerialExperiment returns a new SerialExperiment
func NewSerialExperiment(a agent.ControlAgent, f domain.Factory,
	stepLimit uint64) (*SerialExperiment, error) {
	if a == nil {
		return nil, fmt.Errorf("newSerialExperiment: agent cannot be nil")
	}
	if f == nil {
		return nil, fmt.Errorf("newSerialExperiment: factory cannot be nil")
	}
	if stepLimit == 0 {
		return nil, fmt.Errorf("newSerialExperiment: step limit must be " +
			"positive")
	}
	return &SerialExperiment{a, f, stepLimit}, nil
}

// Next implements the Driver interface
func (s *SerialExperiment) Next() Episode {
	d := s.factory()
	obs := d.Emit()

	var e Episode
	if obs.Terminal {
		s.agent.HandleTerminal(obs.State)
		return e
	}

	a := s.agent.Pi(obs.State)
	for {
		t := d.Step(a)
		e.NSteps++
		e.TotalReward += t.Reward

		s.agent.HandleTransition(t)
		if t.Terminal() || e.NSteps >= s.stepLimit {
			s.agent.HandleTerminal(t.To.State)
			return e
		}
		a = s.agent.Pi(t.To.State)
	}
}
