// Package trace implements eligibility traces over feature vectors
package trace

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/utils/matutils"
)

// Trace is a decaying accumulator of feature vectors. On each step,
// Decay is called once and then Update is called once. The owner of a
// Trace resets it at the start of every episode.
type Trace interface {
	// Get returns the trace. Changes to the returned vector are
	// reflected in the trace.
	Get() *mat.VecDense

	// Decay multiplies the trace by rate * λ
	Decay(rate float64)

	// Update adds phi to the trace
	Update(phi mat.Vector)

	// Reset sets the trace to zero
	Reset()

	// Lambda returns the trace decay parameter λ
	Lambda() parameter.Parameter
}

// Accumulating is a trace which adds feature vectors without bound
type Accumulating struct {
	lambda      parameter.Parameter
	eligibility *mat.VecDense
}

// NewAccumulating returns a new zero Accumulating trace over features
// of length size
func NewAccumulating(lambda parameter.Parameter, size int) (*Accumulating,
	error) {
	if err := validate(lambda, size); err != nil {
		return nil, fmt.Errorf("newAccumulating: %v", err)
	}
	return &Accumulating{lambda, mat.NewVecDense(size, nil)}, nil
}

// Get implements the Trace interface
func (a *Accumulating) Get() *mat.VecDense {
	return a.eligibility
}

// Decay implements the Trace interface
func (a *Accumulating) Decay(rate float64) {
	a.eligibility.ScaleVec(rate*a.lambda.Value(), a.eligibility)
}

// Update implements the Trace interface
func (a *Accumulating) Update(phi mat.Vector) {
	a.eligibility.AddVec(a.eligibility, phi)
}

// Reset implements the Trace interface
func (a *Accumulating) Reset() {
	a.eligibility.Zero()
}

// Lambda implements the Trace interface
func (a *Accumulating) Lambda() parameter.Parameter {
	return a.lambda
}

// Replacing is a trace whose entries never exceed 1 after an update
type Replacing struct {
	*Accumulating
}

// NewReplacing returns a new zero Replacing trace over features of
// length size
func NewReplacing(lambda parameter.Parameter, size int) (*Replacing, error) {
	if err := validate(lambda, size); err != nil {
		return nil, fmt.Errorf("newReplacing: %v", err)
	}
	return &Replacing{&Accumulating{lambda, mat.NewVecDense(size, nil)}}, nil
}

// Update adds phi to the trace, then clips every entry to at most 1
func (r *Replacing) Update(phi mat.Vector) {
	r.Accumulating.Update(phi)
	matutils.VecClipMax(r.eligibility, 1.0)
}

// New returns a new Replacing trace if replacing is true and an
// Accumulating trace otherwise
func New(lambda parameter.Parameter, size int, replacing bool) (Trace,
	error) {
	if replacing {
		r, err := NewReplacing(lambda, size)
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	a, err := NewAccumulating(lambda, size)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func validate(lambda parameter.Parameter, size int) error {
	if lambda == nil {
		return fmt.Errorf("λ cannot be nil")
	}
	if size < 1 {
		return fmt.Errorf("size must be positive: have(%d)", size)
	}
	return nil
}
