package gridworld

import (
	"fmt"
)

// Goal represents the task of reaching goal cells in a GridWorld
type Goal struct {
	goals          []Cell
	timeStepReward float64
	goalReward     float64
}

// NewGoal creates and returns a new Goal task. Transitions into a goal
// cell are rewarded with gr and all other transitions with tr.
func NewGoal(goals []Cell, tr, gr float64) (*Goal, error) {
	if len(goals) == 0 {
		return nil, fmt.Errorf("newGoal: at least one goal is required")
	}
	return &Goal{goals, tr, gr}, nil
}

// Reward implements the Task interface
func (g *Goal) Reward(_, to Cell, _ bool) float64 {
	if g.AtGoal(to) {
		return g.goalReward
	}
	return g.timeStepReward
}

// AtGoal implements the Task interface
func (g *Goal) AtGoal(c Cell) bool {
	for _, goal := range g.goals {
		if c == goal {
			return true
		}
	}
	return false
}

// String implements the fmt.Stringer interface
func (g *Goal) String() string {
	return fmt.Sprintf("Goal(%v)", g.goals)
}

// Cliff is the cliff walking task. The bottom row of the grid, except
// for its leftmost cell, is terminal: its rightmost cell is the goal
// and every other cell is the cliff. Reaching the goal is rewarded
// with +50 and falling off the cliff with -50. Bumping into the edge
// of the grid costs -1 and every other move is free.
type Cliff struct {
	cols int
}

// Rewards of the cliff walking task
const (
	CliffGoalReward = 50.0
	CliffFallReward = -50.0
	CliffBumpReward = -1.0
)

// Reward implements the Task interface
func (c Cliff) Reward(_, to Cell, moved bool) float64 {
	if c.AtGoal(to) {
		if to.X == c.cols-1 {
			return CliffGoalReward
		}
		return CliffFallReward
	}

	if !moved {
		return CliffBumpReward
	}
	return 0.0
}

// AtGoal implements the Task interface
func (c Cliff) AtGoal(cell Cell) bool {
	return cell.X > 0 && cell.Y == 0
}

// String implements the fmt.Stringer interface
func (c Cliff) String() string {
	return "Cliff"
}

// NewCliffWalk returns a cliff walking GridWorld with r rows and c
// columns, starting in the bottom left cell
func NewCliffWalk(r, c int) (*GridWorld, error) {
	if c < 2 {
		return nil, fmt.Errorf("newCliffWalk: at least two columns are "+
			"required: have(%d)", c)
	}
	return New(r, c, Cliff{c}, Cell{0, 0})
}
