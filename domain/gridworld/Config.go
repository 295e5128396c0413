package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/domain"
)

// Domain types of the package
const (
	GridWorldType domain.Type = "GridWorld"
	CliffWalkType domain.Type = "CliffWalk"
)

func init() {
	domain.Register(Config{})
	domain.Register(CliffWalkConfig{})
}

// Config describes a goal-reaching GridWorld. If RandomStart is set,
// episodes start in a uniformly random non-goal cell. Otherwise, they
// start at Start.
type Config struct {
	Rows, Cols  int
	Start       Cell
	RandomStart bool
	Goals       []Cell
	StepReward  float64
	GoalReward  float64
}

// Create implements the domain.Creator interface
func (c Config) Create(seed uint64) (domain.Factory, error) {
	task, err := NewGoal(c.Goals, c.StepReward, c.GoalReward)
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	// Validate the configuration once so that the factory cannot fail
	if _, err := New(c.Rows, c.Cols, task, c.Start); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	start := func() Cell { return c.Start }
	if c.RandomStart {
		if len(c.Goals) >= c.Rows*c.Cols {
			return nil, fmt.Errorf("create: every cell is a goal")
		}

		starter, err := domain.NewCategoricalStarter(
			[]int{c.Cols, c.Rows}, seed)
		if err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}

		start = func() Cell {
			for {
				cell := toCell(starter.Start())
				if !task.AtGoal(cell) {
					return cell
				}
			}
		}
	}

	return func() domain.Domain {
		g, _ := New(c.Rows, c.Cols, task, start())
		return g
	}, nil
}

// Type returns GridWorldType
func (Config) Type() domain.Type { return GridWorldType }

// CliffWalkConfig describes a cliff walking GridWorld. Zero Rows or
// Cols default to the classic 5 x 12 grid.
type CliffWalkConfig struct {
	Rows, Cols int
}

// Create implements the domain.Creator interface
func (c CliffWalkConfig) Create(uint64) (domain.Factory, error) {
	if c.Rows == 0 {
		c.Rows = 5
	}
	if c.Cols == 0 {
		c.Cols = 12
	}

	if _, err := NewCliffWalk(c.Rows, c.Cols); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	return func() domain.Domain {
		g, _ := NewCliffWalk(c.Rows, c.Cols)
		return g
	}, nil
}

// Type returns CliffWalkType
func (CliffWalkConfig) Type() domain.Type { return CliffWalkType }
