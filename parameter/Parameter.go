// Package parameter implements scalar hyperparameters that may be
// annealed over the course of an experiment.
//
// Step sizes, discount factors, exploration rates and trace decay
// rates are all Parameters. Agents advance each Parameter they own
// exactly once at the end of every episode by calling Step().
package parameter

import (
	"fmt"
	"math"
)

// Parameter is a scalar with an annealing schedule
type Parameter interface {
	// Value returns the current value of the parameter
	Value() float64

	// Step advances the annealing schedule by one step
	Step()
}

// Constant is a Parameter whose value never changes
type Constant float64

// NewConstant returns a new Constant Parameter
func NewConstant(v float64) *Constant {
	c := Constant(v)
	return &c
}

// Value returns the value of the Constant
func (c *Constant) Value() float64 { return float64(*c) }

// Step is a no-op
func (c *Constant) Step() {}

// String implements the fmt.Stringer interface
func (c *Constant) String() string { return fmt.Sprintf("%v", float64(*c)) }

// Exponential is a Parameter that decays (or grows) geometrically from
// an initial value towards a floor. After k steps the value is
// init * decay^k, bounded by floor.
type Exponential struct {
	init, floor, decay float64
	value              float64
}

// NewExponential returns a new Exponential Parameter
func NewExponential(init, floor, decay float64) (*Exponential, error) {
	if decay <= 0 {
		return nil, fmt.Errorf("newExponential: decay must be positive: "+
			"have(%v)", decay)
	}
	return &Exponential{init, floor, decay, init}, nil
}

// Value returns the current value of the Parameter
func (e *Exponential) Value() float64 { return e.value }

// Step advances the decay by a single step
func (e *Exponential) Step() {
	next := e.value * e.decay
	if e.floor <= e.init {
		e.value = math.Max(next, e.floor)
	} else {
		e.value = math.Min(next, e.floor)
	}
}

// String implements the fmt.Stringer interface
func (e *Exponential) String() string {
	return fmt.Sprintf("Exponential(%v → %v, ×%v)", e.init, e.floor,
		e.decay)
}

// Polynomial interpolates between an initial and final value over a
// horizon using
//
//	final + (init - final) * (1 - k/horizon)^power
//
// and holds the final value after the horizon has passed. A power of
// 1 gives linear interpolation.
type Polynomial struct {
	init, final float64
	horizon     int
	power       float64
	steps       int
}

// NewPolynomial returns a new Polynomial Parameter
func NewPolynomial(init, final float64, horizon int,
	power float64) (*Polynomial, error) {
	if horizon < 1 {
		return nil, fmt.Errorf("newPolynomial: horizon must be positive: "+
			"have(%d)", horizon)
	}
	if power <= 0 {
		return nil, fmt.Errorf("newPolynomial: power must be positive: "+
			"have(%v)", power)
	}
	return &Polynomial{init, final, horizon, power, 0}, nil
}

// NewLinear returns a new Parameter that linearly interpolates between
// init and final over horizon steps
func NewLinear(init, final float64, horizon int) (*Polynomial, error) {
	return NewPolynomial(init, final, horizon, 1)
}

// Value returns the current value of the Parameter
func (p *Polynomial) Value() float64 {
	if p.steps >= p.horizon {
		return p.final
	}
	frac := 1 - float64(p.steps)/float64(p.horizon)
	return p.final + (p.init-p.final)*math.Pow(frac, p.power)
}

// Step advances the interpolation by a single step
func (p *Polynomial) Step() {
	if p.steps < p.horizon {
		p.steps++
	}
}

// String implements the fmt.Stringer interface
func (p *Polynomial) String() string {
	return fmt.Sprintf("Polynomial(%v → %v, H=%d, p=%v)", p.init, p.final,
		p.horizon, p.power)
}

// StepAll steps each argument Parameter in order
func StepAll(params ...Parameter) {
	for _, p := range params {
		p.Step()
	}
}
