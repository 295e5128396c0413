// Package timestep implements the observations and transitions of the
// agent-domain interaction
package timestep

import (
	"fmt"
)

// Observation is a single observation of a domain. A Full observation
// carries the actions available in its state. A Terminal observation
// ends the episode and has no available actions.
type Observation struct {
	State    []float64
	Actions  []int
	Terminal bool
}

// Full returns a non-terminal Observation of state in which actions
// are available
func Full(state []float64, actions []int) Observation {
	return Observation{State: state, Actions: actions}
}

// Terminal returns a terminal Observation of state
func Terminal(state []float64) Observation {
	return Observation{State: state, Terminal: true}
}

// String implements the fmt.Stringer interface
func (o Observation) String() string {
	if o.Terminal {
		return fmt.Sprintf("Terminal(%v)", o.State)
	}
	return fmt.Sprintf("Full(%v, actions: %v)", o.State, o.Actions)
}

// Transition packages together a single step of a domain: the action
// taken from an observation, and the reward and observation which
// followed
type Transition struct {
	From   Observation
	Action int
	Reward float64
	To     Observation
}

// Terminal returns whether the transition ends an episode
func (t Transition) Terminal() bool {
	return t.To.Terminal
}

// String implements the fmt.Stringer interface
func (t Transition) String() string {
	str := "Transition | From: %v  |  Action: %d  |  Reward: %.2f  |  " +
		"To: %v"

	return fmt.Sprintf(str, t.From, t.Action, t.Reward, t.To)
}
