package spaces

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r1"
)

// Continuous is a dimension consisting of the real interval [min, max]
type Continuous struct {
	bounds r1.Interval
}

// NewContinuous returns a new Continuous dimension over [min, max]
func NewContinuous(min, max float64) (Continuous, error) {
	if min >= max {
		return Continuous{}, fmt.Errorf("newContinuous: lower bound must "+
			"be smaller than upper bound: %v >= %v", min, max)
	}
	return Continuous{r1.Interval{Min: min, Max: max}}, nil
}

// Sample samples a value uniformly from the dimension
func (c Continuous) Sample(rng *rand.Rand) float64 {
	return c.bounds.Min + rng.Float64()*(c.bounds.Max-c.bounds.Min)
}

// Span returns the span of the dimension, which is always infinite
func (c Continuous) Span() Span {
	return Infinite()
}

// Bounds returns the bounds of the dimension
func (c Continuous) Bounds() r1.Interval {
	return c.bounds
}

// Partitioned returns the dimension partitioned into density bins
func (c Continuous) Partitioned(density int) (Partitioned, error) {
	return NewPartitioned(c.bounds.Min, c.bounds.Max, density)
}

// String implements the fmt.Stringer interface
func (c Continuous) String() string {
	return fmt.Sprintf("Continuous[%v, %v]", c.bounds.Min, c.bounds.Max)
}
