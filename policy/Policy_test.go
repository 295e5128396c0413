package policy

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/tdcontrol/parameter"
)

var actionValues = [][]float64{
	{0},
	{1, 2, 3},
	{3, 3, 1},
	{-100, 100, 0, 5},
	{1e300, -1e300},
	{0.1, 0.1, 0.1, 0.1, 0.1},
}

func policies(t *testing.T) map[string]Policy {
	eps, err := NewEpsilonGreedy(parameter.NewConstant(0.2))
	require.NoError(t, err)
	boltz, err := NewBoltzmann(parameter.NewConstant(0.5))
	require.NoError(t, err)

	return map[string]Policy{
		"Greedy":        NewGreedy(),
		"EpsilonGreedy": eps,
		"Boltzmann":     boltz,
		"Random":        NewRandom(),
	}
}

func TestProbabilitiesWellFormed(t *testing.T) {
	for name, p := range policies(t) {
		t.Run(name, func(t *testing.T) {
			for _, qs := range actionValues {
				probs := p.Probabilities(qs)
				require.Len(t, probs, len(qs))
				assert.InDelta(t, 1.0, floats.Sum(probs), 1e-9)
				for _, prob := range probs {
					assert.GreaterOrEqual(t, prob, 0.0)
				}
			}
		})
	}
}

func TestSampleInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for name, p := range policies(t) {
		t.Run(name, func(t *testing.T) {
			for _, qs := range actionValues {
				for i := 0; i < 100; i++ {
					a := p.Sample(rng, qs)
					assert.True(t, a >= 0 && a < len(qs))
				}
			}
		})
	}
}

func TestGreedyFirstIndexWins(t *testing.T) {
	g := NewGreedy()
	assert.Equal(t, 0, g.Sample(nil, []float64{3, 3, 1}))
	assert.Equal(t, 1, g.Sample(nil, []float64{1, 5, 5}))
	assert.Equal(t, []float64{0, 1, 0}, g.Probabilities([]float64{1, 5, 5}))
}

func TestEpsilonGreedy(t *testing.T) {
	eps, err := parameter.NewExponential(0.5, 0.0, 0.5)
	require.NoError(t, err)
	p, err := NewEpsilonGreedy(eps)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.25, 0.75},
		p.Probabilities([]float64{0, 1}), 1e-12)

	p.HandleTerminal()
	assert.Equal(t, 0.25, p.Epsilon())
	assert.InDeltaSlice(t, []float64{0.125, 0.875},
		p.Probabilities([]float64{0, 1}), 1e-12)

	rng := rand.New(rand.NewSource(3))
	counts := make([]float64, 2)
	for i := 0; i < 10000; i++ {
		counts[p.Sample(rng, []float64{0, 1})]++
	}
	assert.InDelta(t, 0.875, counts[1]/10000, 0.02)

	_, err = NewEpsilonGreedy(parameter.NewConstant(1.5))
	assert.Error(t, err)
	_, err = NewEpsilonGreedy(nil)
	assert.Error(t, err)
}

func TestEpsilonGreedyClipsAnnealedEpsilon(t *testing.T) {
	eps, err := parameter.NewExponential(0.5, 2, 1.5)
	require.NoError(t, err)
	p, err := NewEpsilonGreedy(eps)
	require.NoError(t, err)

	// 0.5 -> 0.75 -> 1.125
	p.HandleTerminal()
	p.HandleTerminal()
	assert.Equal(t, 1.0, p.Epsilon())
	assert.InDeltaSlice(t, []float64{0.5, 0.5},
		p.Probabilities([]float64{0, 1}), 1e-12)

	// ε saturates at 2, which would make non-greedy probabilities
	// negative
	for i := 0; i < 3; i++ {
		p.HandleTerminal()
	}
	probs := p.Probabilities([]float64{0, 1, 2})
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, probs,
		1e-12)
	assert.NotPanics(t, func() {
		p.Sample(rand.New(rand.NewSource(1)), []float64{0, 1, 2})
	})
}

func TestEpsilonGreedyClipsNegativeEpsilon(t *testing.T) {
	eps, err := parameter.NewLinear(0.5, -1, 2)
	require.NoError(t, err)
	p, err := NewEpsilonGreedy(eps)
	require.NoError(t, err)

	p.HandleTerminal()
	p.HandleTerminal()
	assert.Equal(t, 0.0, p.Epsilon())
	assert.Equal(t, []float64{0, 1}, p.Probabilities([]float64{0, 1}))
}

func TestBoltzmann(t *testing.T) {
	p, err := NewBoltzmann(parameter.NewConstant(1.0))
	require.NoError(t, err)

	probs := p.Probabilities([]float64{0, 0})
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, probs, 1e-12)

	probs = p.Probabilities([]float64{1, 0})
	e := 2.718281828459045
	assert.InDelta(t, e/(e+1), probs[0], 1e-12)

	_, err = NewBoltzmann(parameter.NewConstant(0))
	assert.Error(t, err)
}

func TestBoltzmannGrad(t *testing.T) {
	p, err := NewBoltzmann(parameter.NewConstant(2.0))
	require.NoError(t, err)

	qs := []float64{0.3, -1.2, 2.0}
	grad := p.Grad(qs, 1)
	probs := p.Probabilities(qs)

	// The gradient of log-probabilities sums to zero over action values
	assert.InDelta(t, 0.0, floats.Sum(grad), 1e-12)
	assert.InDelta(t, (1-probs[1])/2.0, grad[1], 1e-12)
	assert.InDelta(t, -probs[0]/2.0, grad[0], 1e-12)

	// Finite difference check
	const h = 1e-6
	for i := range qs {
		up := append([]float64(nil), qs...)
		up[i] += h
		down := append([]float64(nil), qs...)
		down[i] -= h

		logUp := math.Log(p.Probabilities(up)[1])
		logDown := math.Log(p.Probabilities(down)[1])
		numeric := (logUp - logDown) / (2 * h)
		assert.InDelta(t, numeric, grad[i], 1e-6)
	}

	assert.Panics(t, func() { p.Grad(qs, 3) })
}

func TestEmptyActionValuesPanic(t *testing.T) {
	for name, p := range policies(t) {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, func() { p.Probabilities(nil) })
		})
	}
}

func TestConfigJSON(t *testing.T) {
	configs := []Config{
		NewConfig(GreedyConfig{}),
		NewConfig(EpsilonGreedyConfig{Epsilon: parameter.Fixed(0.1)}),
		NewConfig(BoltzmannConfig{Tau: parameter.Fixed(1.0)}),
		NewConfig(RandomConfig{}),
	}

	for _, c := range configs {
		data, err := json.Marshal(c)
		require.NoError(t, err)

		var decoded Config
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, c.Type, decoded.Type)

		p, err := decoded.Create()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, floats.Sum(p.Probabilities([]float64{1, 2})),
			1e-12)
	}

	_, err := NewConfig(EpsilonGreedyConfig{}).Create()
	assert.Error(t, err)
}
