// Package gridworld implements 2D gridworld domains
package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/domain"
	"github.com/samuelfneumann/tdcontrol/spaces"
	"github.com/samuelfneumann/tdcontrol/timestep"
)

// Actions move the agent a single cell. Moves into the edge of the
// grid leave the agent in place.
const (
	Left int = iota
	Right
	Up
	Down

	NumActions = 4
)

// Cell is a position (x, y) in a grid world, with x the column and y
// the row
type Cell struct {
	X, Y int
}

// Task implements the reward scheme and terminal cells of a GridWorld
type Task interface {
	// Reward returns the reward for moving from one cell to another.
	// moved is false if the agent bumped into the edge of the grid.
	Reward(from, to Cell, moved bool) float64

	// AtGoal returns whether c is a terminal cell
	AtGoal(c Cell) bool
}

// GridWorld represents a gridworld domain. States are the (x, y)
// coordinates of the agent.
type GridWorld struct {
	Task
	rows, cols int
	position   Cell
}

// New creates a new GridWorld with r rows and c columns, and the
// agent starting in cell start
func New(r, c int, t Task, start Cell) (*GridWorld, error) {
	if r < 1 || c < 1 {
		return nil, fmt.Errorf("new: grid must have at least one row and "+
			"column: have(%d, %d)", r, c)
	}
	if t == nil {
		return nil, fmt.Errorf("new: task cannot be nil")
	}

	g := &GridWorld{Task: t, rows: r, cols: c}
	if !g.contains(start) {
		return nil, fmt.Errorf("new: start %v outside of (%d, %d) grid",
			start, r, c)
	}
	g.position = start
	return g, nil
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.rows, g.cols
}

// Coordinates returns the current position of the agent
func (g *GridWorld) Coordinates() Cell {
	return g.position
}

// Emit implements the domain.Domain interface
func (g *GridWorld) Emit() timestep.Observation {
	state := []float64{float64(g.position.X), float64(g.position.Y)}
	if g.IsTerminal() {
		return timestep.Terminal(state)
	}
	return timestep.Full(state, domain.Actions(NumActions))
}

// Step implements the domain.Domain interface
func (g *GridWorld) Step(a int) timestep.Transition {
	if g.IsTerminal() {
		panic("step: cannot step from a terminal cell")
	}

	from := g.Emit()
	g.position = g.move(g.position, a)
	to := g.Emit()

	return timestep.Transition{
		From:   from,
		Action: a,
		Reward: g.Reward(from, to),
		To:     to,
	}
}

// Reward implements the domain.Domain interface
func (g *GridWorld) Reward(from, to timestep.Observation) float64 {
	fromCell, toCell := toCell(from.State), toCell(to.State)
	return g.Task.Reward(fromCell, toCell, fromCell != toCell)
}

// IsTerminal implements the domain.Domain interface
func (g *GridWorld) IsTerminal() bool {
	return g.AtGoal(g.position)
}

// StateSpace returns the space of (x, y) coordinates
func (g *GridWorld) StateSpace() spaces.Space {
	x, _ := spaces.NewDiscrete(g.cols)
	y, _ := spaces.NewDiscrete(g.rows)
	return spaces.NewPair(x, y)
}

// ActionSpace returns the space of the four movement actions
func (g *GridWorld) ActionSpace() spaces.Space {
	actions, _ := spaces.NewActionSpace(NumActions)
	return actions
}

// String implements the fmt.Stringer interface
func (g *GridWorld) String() string {
	str := "GridWorld | At: %v  |  Task: %v  |  Bounds: (%d, %d)"
	return fmt.Sprintf(str, g.position, g.Task, g.rows, g.cols)
}

// move returns the cell reached by taking action a in cell c
func (g *GridWorld) move(c Cell, a int) Cell {
	next := c
	switch a {
	case Left:
		next.X--
	case Right:
		next.X++
	case Up:
		next.Y++
	case Down:
		next.Y--
	default:
		panic(fmt.Sprintf("move: illegal action %d ∉ [0, %d)", a,
			NumActions))
	}

	if !g.contains(next) {
		return c
	}
	return next
}

func (g *GridWorld) contains(c Cell) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

func toCell(state []float64) Cell {
	return Cell{int(state[0]), int(state[1])}
}
