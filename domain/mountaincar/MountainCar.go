// Package mountaincar implements the discrete action classic control
// domain "Mountain Car"
package mountaincar

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/tdcontrol/domain"
	"github.com/samuelfneumann/tdcontrol/spaces"
	"github.com/samuelfneumann/tdcontrol/timestep"
	"github.com/samuelfneumann/tdcontrol/utils/floatutils"
)

const (
	MinPosition float64 = -1.2
	MaxPosition float64 = 0.6
	MaxSpeed    float64 = 0.07
	Power       float64 = 0.0015 // Engine power
	Gravity     float64 = 0.0025

	// Commonly used goal position
	GoalPosition float64 = 0.45

	NumActions = 3
)

// MountainCar implements the classic control Mountain Car domain.
// In this domain, the agent controls a car in a valley between two
// hills. The car is underpowered and cannot drive up the hill unless
// it rocks back and forth from hill to hill, using its momentum to
// gradually climb higher.
//
// States consist of the x position of the car and its velocity. Upon
// reaching the minimum position, the velocity of the car is set to 0.
//
// Actions are discrete in (0, 1, 2) and determine in which direction
// to apply full accelerating force to the car:
//
//	Action	Meaning
//	  0		Accelerate left
//	  1		Do nothing
//	  2		Accelerate right
//
// Rewards are -1 on each timestep and 0 for the action which
// transitions the car to the goal. Episodes end when the car reaches
// the goal position.
type MountainCar struct {
	positionBounds r1.Interval
	speedBounds    r1.Interval
	position       float64
	velocity       float64
	goalX          float64
}

// New creates a new MountainCar starting in the state sampled from s
func New(s domain.Starter, goalX float64) (*MountainCar, error) {
	if goalX <= MinPosition || goalX > MaxPosition {
		return nil, fmt.Errorf("new: goal position %v outside of (%v, %v]",
			goalX, MinPosition, MaxPosition)
	}

	m := &MountainCar{
		positionBounds: r1.Interval{Min: MinPosition, Max: MaxPosition},
		speedBounds:    r1.Interval{Min: -MaxSpeed, Max: MaxSpeed},
		goalX:          goalX,
	}

	state := s.Start()
	if err := m.validateState(state); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}
	m.position, m.velocity = state[0], state[1]

	return m, nil
}

// Emit implements the domain.Domain interface
func (m *MountainCar) Emit() timestep.Observation {
	state := []float64{m.position, m.velocity}
	if m.IsTerminal() {
		return timestep.Terminal(state)
	}
	return timestep.Full(state, domain.Actions(NumActions))
}

// Step implements the domain.Domain interface. Actions outside of
// (0, 1, 2) cause a panic.
func (m *MountainCar) Step(a int) timestep.Transition {
	if a < 0 || a >= NumActions {
		panic(fmt.Sprintf("step: illegal action %v ∉ (0, 1, 2)", a))
	}
	if m.IsTerminal() {
		panic("step: cannot step from the goal")
	}

	from := m.Emit()
	m.nextState(float64(a) - 1.0)
	to := m.Emit()

	return timestep.Transition{
		From:   from,
		Action: a,
		Reward: m.Reward(from, to),
		To:     to,
	}
}

// nextState updates the state of the car given the applied force
func (m *MountainCar) nextState(force float64) {
	// Update the velocity
	m.velocity += force*Power - Gravity*math.Cos(3*m.position)
	m.velocity = floatutils.ClipInterval(m.velocity, m.speedBounds)

	// Update the position
	m.position += m.velocity
	m.position = floatutils.ClipInterval(m.position, m.positionBounds)

	// The car stops at the left wall
	if m.position <= m.positionBounds.Min && m.velocity < 0 {
		m.velocity = 0
	}
}

// Reward implements the domain.Domain interface
func (m *MountainCar) Reward(_, to timestep.Observation) float64 {
	if to.State[0] >= m.goalX {
		return 0.0
	}
	return -1.0
}

// IsTerminal implements the domain.Domain interface
func (m *MountainCar) IsTerminal() bool {
	return m.position >= m.goalX
}

// StateSpace returns the space of (position, velocity) pairs
func (m *MountainCar) StateSpace() spaces.Space {
	position, _ := spaces.NewContinuous(m.positionBounds.Min,
		m.positionBounds.Max)
	velocity, _ := spaces.NewContinuous(m.speedBounds.Min,
		m.speedBounds.Max)
	return spaces.NewPair(position, velocity)
}

// ActionSpace returns the space of the three actions
func (m *MountainCar) ActionSpace() spaces.Space {
	actions, _ := spaces.NewActionSpace(NumActions)
	return actions
}

// String returns a string representation of the domain
func (m *MountainCar) String() string {
	str := "Mountain Car  |  Position: %v  |  Speed: %v"
	return fmt.Sprintf(str, m.position, m.velocity)
}

// validateState returns an error if the state is not within the
// bounds of the domain
func (m *MountainCar) validateState(state []float64) error {
	if len(state) != 2 {
		return fmt.Errorf("state must have 2 features: have(%d)",
			len(state))
	}
	if !contains(m.positionBounds, state[0]) {
		return fmt.Errorf("position %v outside of %v", state[0],
			m.positionBounds)
	}
	if !contains(m.speedBounds, state[1]) {
		return fmt.Errorf("velocity %v outside of %v", state[1],
			m.speedBounds)
	}
	return nil
}

func contains(i r1.Interval, v float64) bool {
	return v >= i.Min && v <= i.Max
}
