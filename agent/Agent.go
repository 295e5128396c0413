// Package agent defines the interfaces of learning agents
package agent

import (
	"github.com/samuelfneumann/tdcontrol/policy"
	"github.com/samuelfneumann/tdcontrol/timestep"
)

// ControlAgent learns to select actions in a domain.
//
// A ControlAgent has a behaviour policy, used to select actions while
// learning, and a target policy, the policy it is learning about.
// These may be the same policy. Every transition the agent experiences
// is passed to HandleTransition, and the state which ends an episode
// is passed to HandleTerminal.
type ControlAgent interface {
	// Pi samples an action in state s from the behaviour policy
	Pi(s []float64) int

	// PiTarget samples an action in state s from the target policy
	PiTarget(s []float64) int

	// EvaluatePolicy samples an action from p in state s, using the
	// agent's current action values
	EvaluatePolicy(p policy.Policy, s []float64) int

	// HandleTransition updates the agent with a single transition
	HandleTransition(t timestep.Transition)

	// HandleTerminal performs the end of episode updates: traces are
	// reset and annealed parameters are stepped
	HandleTerminal(s []float64)
}

// PredictionAgent learns to evaluate states under the policy which
// generates its transitions.
type PredictionAgent interface {
	// Evaluate returns the estimated value of state s
	Evaluate(s []float64) float64

	// HandleTransition updates the agent with a single transition and
	// returns the TD error of the transition before the update
	HandleTransition(t timestep.Transition) float64

	// HandleTerminal performs the end of episode updates
	HandleTerminal(s []float64)
}
