package domain

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// Starter implements a distribution of starting states and samples
// starting states for domains
type Starter interface {
	Start() []float64
}

// UniformStarter samples starting states uniformly from a box
type UniformStarter struct {
	features int
	rand     *distmv.Uniform
}

// NewUniformStarter returns a new UniformStarter sampling dimension i
// from bounds[i]
func NewUniformStarter(bounds []r1.Interval, seed uint64) UniformStarter {
	source := rand.NewSource(seed)
	rand := distmv.NewUniform(bounds, source)

	return UniformStarter{len(bounds), rand}
}

// Start returns a starting state
func (u UniformStarter) Start() []float64 {
	return u.rand.Rand(make([]float64, u.features))
}

// CategoricalStarter returns starting states sampled from a
// multi-dimensional uniform categorical distribution. Dimension i takes
// values in (0, 1, 2, ... bounds[i]-1).
type CategoricalStarter struct {
	rand []distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter
func NewCategoricalStarter(bounds []int, seed uint64) (CategoricalStarter,
	error) {
	source := rand.NewSource(seed)

	rand := make([]distuv.Categorical, len(bounds))
	for i := range rand {
		if bounds[i] < 1 {
			return CategoricalStarter{}, fmt.Errorf("newCategoricalStarter: "+
				"dimension %d must have at least one value", i)
		}

		// Create the weights for the uniform categorical distribution
		weights := make([]float64, bounds[i])
		for j := range weights {
			weights[j] = 1.0 / float64(len(weights))
		}

		rand[i] = distuv.NewCategorical(weights, source)
	}

	return CategoricalStarter{rand}, nil
}

// Start returns a starting state
func (c CategoricalStarter) Start() []float64 {
	start := make([]float64, len(c.rand))
	for i := range start {
		start[i] = c.rand[i].Rand()
	}
	return start
}

// FixedStarter always starts in the same state
type FixedStarter []float64

// Start returns a copy of the starting state
func (f FixedStarter) Start() []float64 {
	return append([]float64(nil), f...)
}
