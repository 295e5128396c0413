package policy

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
)

// Greedy always selects the action of highest value. Ties are broken
// in favour of the action with the lowest index.
type Greedy struct{}

// NewGreedy returns a new Greedy policy
func NewGreedy() Greedy {
	return Greedy{}
}

// Sample returns the greedy action. No randomness is consumed.
func (Greedy) Sample(_ *rand.Rand, qs []float64) int {
	checkActions("sample", qs)
	return floats.MaxIdx(qs)
}

// Probabilities returns a one-hot distribution on the greedy action
func (Greedy) Probabilities(qs []float64) []float64 {
	checkActions("probabilities", qs)

	probs := make([]float64, len(qs))
	probs[floats.MaxIdx(qs)] = 1.0
	return probs
}

// HandleTerminal does nothing
func (Greedy) HandleTerminal() {}
