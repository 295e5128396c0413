package mountaincar

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/tdcontrol/domain"
)

// MountainCarType is the domain type of MountainCar
const MountainCarType domain.Type = "MountainCar"

func init() {
	domain.Register(Config{})
}

// Config describes a MountainCar domain. Starting positions are drawn
// uniformly from StartPosition with zero velocity. Zero values default
// to the classic [-0.6, -0.4] start and GoalPosition.
type Config struct {
	StartPosition r1.Interval
	Goal          float64
}

// Create implements the domain.Creator interface
func (c Config) Create(seed uint64) (domain.Factory, error) {
	if c.StartPosition == (r1.Interval{}) {
		c.StartPosition = r1.Interval{Min: -0.6, Max: -0.4}
	}
	if c.Goal == 0 {
		c.Goal = GoalPosition
	}
	if c.StartPosition.Min > c.StartPosition.Max {
		return nil, fmt.Errorf("create: empty start interval %v",
			c.StartPosition)
	}

	starter := domain.NewUniformStarter([]r1.Interval{
		c.StartPosition,
		{Min: 0, Max: 0},
	}, seed)

	// Validate the configuration once so that the factory cannot fail
	for _, x := range []float64{c.StartPosition.Min, c.StartPosition.Max} {
		if _, err := New(domain.FixedStarter{x, 0}, c.Goal); err != nil {
			return nil, fmt.Errorf("create: %v", err)
		}
	}

	return func() domain.Domain {
		m, err := New(starter, c.Goal)
		if err != nil {
			panic(fmt.Sprintf("mountain car: %v", err))
		}
		return m
	}, nil
}

// Type returns MountainCarType
func (Config) Type() domain.Type { return MountainCarType }
