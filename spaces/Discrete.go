package spaces

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r1"
)

// Discrete is a dimension consisting of the integers 0, 1, ..., n-1
type Discrete struct {
	n int
}

// NewDiscrete returns a new Discrete dimension with n values
func NewDiscrete(n int) (Discrete, error) {
	if n < 1 {
		return Discrete{}, fmt.Errorf("newDiscrete: dimension must have "+
			"at least 1 value: have(%d)", n)
	}
	return Discrete{n}, nil
}

// Len returns the number of values in the dimension
func (d Discrete) Len() int {
	return d.n
}

// Sample samples an integer uniformly from the dimension
func (d Discrete) Sample(rng *rand.Rand) float64 {
	return float64(rng.Intn(d.n))
}

// Span returns the span of the dimension
func (d Discrete) Span() Span {
	return Finite(d.n)
}

// Bounds returns the bounds of the dimension
func (d Discrete) Bounds() r1.Interval {
	return r1.Interval{Min: 0, Max: float64(d.n - 1)}
}

// String implements the fmt.Stringer interface
func (d Discrete) String() string {
	return fmt.Sprintf("Discrete(%d)", d.n)
}
