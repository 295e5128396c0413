package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/utils/matutils"
)

func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestAccumulating(t *testing.T) {
	tr, err := NewAccumulating(parameter.NewConstant(0.95), 10)
	require.NoError(t, err)
	ones := matutils.VecOnes(10)

	assert.Equal(t, filled(10, 0), tr.Get().RawVector().Data)

	tr.Decay(1.0)
	assert.Equal(t, filled(10, 0), tr.Get().RawVector().Data)

	tr.Update(ones)
	assert.Equal(t, filled(10, 1), tr.Get().RawVector().Data)

	tr.Decay(1.0)
	assert.Equal(t, filled(10, 0.95), tr.Get().RawVector().Data)

	tr.Update(ones)
	assert.Equal(t, filled(10, 1.95), tr.Get().RawVector().Data)

	tr.Reset()
	assert.Equal(t, 0.0, mat.Sum(tr.Get()))
}

func TestReplacing(t *testing.T) {
	tr, err := NewReplacing(parameter.NewConstant(0.95), 10)
	require.NoError(t, err)
	ones := matutils.VecOnes(10)

	tr.Decay(1.0)
	assert.Equal(t, filled(10, 0), tr.Get().RawVector().Data)

	tr.Update(ones)
	assert.Equal(t, filled(10, 1), tr.Get().RawVector().Data)

	tr.Decay(1.0)
	assert.Equal(t, filled(10, 0.95), tr.Get().RawVector().Data)

	tr.Update(ones)
	assert.Equal(t, filled(10, 1), tr.Get().RawVector().Data)
}

func TestReplacingNeverExceedsOne(t *testing.T) {
	tr, err := New(parameter.NewConstant(1.0), 4, true)
	require.NoError(t, err)

	phis := [][]float64{
		{1, 0, 0.5, 0}, {1, 1, 0.5, 0}, {0, 1, 0.5, 0.2}, {0.9, 1, 1, 0.2},
	}
	for i := 0; i < 50; i++ {
		tr.Decay(0.99)
		tr.Update(mat.NewVecDense(4, phis[i%len(phis)]))
		for j := 0; j < 4; j++ {
			assert.LessOrEqual(t, tr.Get().AtVec(j), 1.0)
		}
	}
}

func TestDecayUsesAnnealedLambda(t *testing.T) {
	lambda, err := parameter.NewExponential(1.0, 0.5, 0.5)
	require.NoError(t, err)
	tr, err := New(lambda, 1, false)
	require.NoError(t, err)

	tr.Update(mat.NewVecDense(1, []float64{1}))
	tr.Decay(0.5)
	assert.Equal(t, 0.5, tr.Get().AtVec(0))

	tr.Lambda().Step()
	tr.Decay(1.0)
	assert.Equal(t, 0.25, tr.Get().AtVec(0))
}

func TestConstructionErrors(t *testing.T) {
	_, err := New(nil, 3, false)
	assert.Error(t, err)
	_, err = New(parameter.NewConstant(0.9), 0, true)
	assert.Error(t, err)
}
