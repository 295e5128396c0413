package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/utils/floatutils"
)

// EpsilonGreedy selects an action uniformly at random with probability
// ε and the greedy action otherwise. ε is annealed once per episode.
type EpsilonGreedy struct {
	epsilon parameter.Parameter
}

// NewEpsilonGreedy returns a new EpsilonGreedy policy
func NewEpsilonGreedy(epsilon parameter.Parameter) (*EpsilonGreedy, error) {
	if epsilon == nil {
		return nil, fmt.Errorf("newEpsilonGreedy: ε cannot be nil")
	}
	if e := epsilon.Value(); e < 0 || e > 1 {
		return nil, fmt.Errorf("newEpsilonGreedy: ε must be in [0, 1]: "+
			"have(%v)", e)
	}
	return &EpsilonGreedy{epsilon}, nil
}

// Epsilon returns the current value of ε, clipped to [0, 1] when an
// annealed schedule leaves that range
func (e *EpsilonGreedy) Epsilon() float64 {
	return floatutils.Clip(e.epsilon.Value(), 0, 1)
}

// Sample implements the Policy interface
func (e *EpsilonGreedy) Sample(rng *rand.Rand, qs []float64) int {
	return sample(rng, e.Probabilities(qs))
}

// Probabilities returns ε/|A| for every action, plus 1 - ε for the
// greedy action
func (e *EpsilonGreedy) Probabilities(qs []float64) []float64 {
	checkActions("probabilities", qs)

	eps := e.Epsilon()
	probs := make([]float64, len(qs))
	for i := range probs {
		probs[i] = eps / float64(len(qs))
	}
	probs[floats.MaxIdx(qs)] += 1.0 - eps

	return probs
}

// HandleTerminal steps ε
func (e *EpsilonGreedy) HandleTerminal() {
	e.epsilon.Step()
}
