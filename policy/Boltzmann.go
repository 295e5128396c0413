package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/utils/floatutils"
)

// Boltzmann selects actions with probability proportional to
// exp(q/τ). The temperature τ is annealed once per episode.
type Boltzmann struct {
	tau parameter.Parameter
}

// NewBoltzmann returns a new Boltzmann policy
func NewBoltzmann(tau parameter.Parameter) (*Boltzmann, error) {
	if tau == nil {
		return nil, fmt.Errorf("newBoltzmann: τ cannot be nil")
	}
	if tau.Value() <= 0 {
		return nil, fmt.Errorf("newBoltzmann: τ must be positive: "+
			"have(%v)", tau.Value())
	}
	return &Boltzmann{tau}, nil
}

// Sample implements the Policy interface
func (b *Boltzmann) Sample(rng *rand.Rand, qs []float64) int {
	return sample(rng, b.Probabilities(qs))
}

// Probabilities returns softmax(qs / τ)
func (b *Boltzmann) Probabilities(qs []float64) []float64 {
	checkActions("probabilities", qs)
	return floatutils.Softmax(nil, qs, b.tau.Value())
}

// Grad returns the gradient of log π(a|·) with respect to the action
// values, (onehot(a) - π) / τ
func (b *Boltzmann) Grad(qs []float64, a int) []float64 {
	if a < 0 || a >= len(qs) {
		panic(fmt.Sprintf("grad: action out of range \n\twant([0, %d)) "+
			"\n\thave(%d)", len(qs), a))
	}

	tau := b.tau.Value()
	grad := b.Probabilities(qs)
	for i := range grad {
		grad[i] = -grad[i] / tau
	}
	grad[a] += 1.0 / tau
	return grad
}

// HandleTerminal steps τ
func (b *Boltzmann) HandleTerminal() {
	b.tau.Step()
}
