// Package policy implements policies which select actions from a
// finite set given the values of each action
package policy

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Policy maps action values to a distribution over actions
type Policy interface {
	// Sample samples an action given the values of each action
	Sample(rng *rand.Rand, qs []float64) int

	// Probabilities returns the probability of selecting each action
	// given the values of each action. The probabilities sum to 1.
	Probabilities(qs []float64) []float64

	// HandleTerminal is called at the end of each episode and anneals
	// any parameters of the policy
	HandleTerminal()
}

// DifferentiablePolicy is a policy whose log-probabilities can be
// differentiated with respect to the action values
type DifferentiablePolicy interface {
	Policy

	// Grad returns the gradient of log π(a|·) with respect to qs
	Grad(qs []float64, a int) []float64
}

// sample samples an action from the categorical distribution probs
// using randomness drawn from rng
func sample(rng *rand.Rand, probs []float64) int {
	return int(distuv.NewCategorical(probs, rng).Rand())
}

func checkActions(name string, qs []float64) {
	if len(qs) == 0 {
		panic(name + ": at least one action value is required")
	}
}
