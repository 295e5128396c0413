package weights

import "fmt"

// ConstantUV implements the distuv.Rander interface so that constant
// initialization can be accomplished through the weight initializers
// which take a distuv.Rander argument
type ConstantUV struct {
	value float64
}

// NewConstantUV returns a new ConstantUV which always draws v
func NewConstantUV(v float64) ConstantUV {
	return ConstantUV{v}
}

// Rand draws a number from the interval [v, v]
func (c ConstantUV) Rand() float64 {
	return c.value
}

// ConstantMV implements the distmv.Rander interface so that constant
// initialization can be accomplished through the weight initializers
// which take a distmv.Rander argument
type ConstantMV struct {
	values []float64
}

// NewConstantMV returns a new *ConstantMV which always draws values
func NewConstantMV(values []float64) *ConstantMV {
	return &ConstantMV{values}
}

// Rand copies the constant values into x. If x is nil, a new slice is
// created. The function panics if the size of the argument slice does
// not equal the number of constant values.
func (c *ConstantMV) Rand(x []float64) []float64 {
	if x == nil {
		x = make([]float64, len(c.values))
	}

	if len(x) != len(c.values) {
		panic(fmt.Sprintf("rand: incorrect size \n\twant(%d) \n\thave(%d)",
			len(c.values), len(x)))
	}

	copy(x, c.values)
	return x
}
