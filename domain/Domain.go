// Package domain outlines the interfaces and structs needed to
// implement concrete domains which agents interact with
package domain

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/spaces"
	"github.com/samuelfneumann/tdcontrol/timestep"
)

// Domain is an episodic environment with a finite set of actions.
// Once a terminal observation is emitted, Step must not be called
// again; a new Domain is created for the next episode.
type Domain interface {
	// Emit returns the current observation
	Emit() timestep.Observation

	// Step takes action a and returns the resulting transition
	Step(a int) timestep.Transition

	// Reward returns the reward of transitioning between observations
	Reward(from, to timestep.Observation) float64

	// IsTerminal returns whether the current state is terminal
	IsTerminal() bool

	StateSpace() spaces.Space
	ActionSpace() spaces.Space
}

// Factory creates a fresh Domain for each episode
type Factory func() Domain

// NumActions returns the number of actions of d. An error is returned
// if the action space of d is not finite.
func NumActions(d Domain) (int, error) {
	n, ok := d.ActionSpace().Span().Int()
	if !ok {
		return 0, fmt.Errorf("numActions: %w", spaces.ErrInfiniteSpan)
	}
	if n < 1 {
		return 0, fmt.Errorf("numActions: domain has no actions")
	}
	return n, nil
}

// Actions returns the actions 0, 1, ..., n-1
func Actions(n int) []int {
	actions := make([]int, n)
	for i := range actions {
		actions[i] = i
	}
	return actions
}
