package policy

import "golang.org/x/exp/rand"

// Random selects actions uniformly at random, ignoring action values
type Random struct{}

// NewRandom returns a new Random policy
func NewRandom() Random {
	return Random{}
}

// Sample implements the Policy interface
func (Random) Sample(rng *rand.Rand, qs []float64) int {
	checkActions("sample", qs)
	return rng.Intn(len(qs))
}

// Probabilities returns a uniform distribution
func (Random) Probabilities(qs []float64) []float64 {
	checkActions("probabilities", qs)

	probs := make([]float64, len(qs))
	for i := range probs {
		probs[i] = 1.0 / float64(len(qs))
	}
	return probs
}

// HandleTerminal does nothing
func (Random) HandleTerminal() {}
