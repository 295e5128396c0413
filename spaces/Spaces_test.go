package spaces

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNullSpace(t *testing.T) {
	var ns NullSpace
	rng := rand.New(rand.NewSource(1))

	assert.Empty(t, ns.Sample(rng))
	assert.Equal(t, 0, ns.Dim())
	assert.Equal(t, Null(), ns.Span())
}

func TestUnitarySpace(t *testing.T) {
	d, err := NewDiscrete(2)
	require.NoError(t, err)
	us := NewUnitary(d)
	rng := rand.New(rand.NewSource(42))

	counts := make([]float64, 2)
	for i := 0; i < 5000; i++ {
		sample := us.Sample(rng)
		require.Len(t, sample, 1)
		require.True(t, sample[0] == 0 || sample[0] == 1)
		counts[int(sample[0])]++
	}

	assert.InDelta(t, 0.5, counts[0]/5000, 0.1)
	assert.InDelta(t, 0.5, counts[1]/5000, 0.1)
	assert.Equal(t, 1, us.Dim())
	assert.Equal(t, d.Span(), us.Span())
}

func TestPairSpace(t *testing.T) {
	d1, _ := NewDiscrete(2)
	d2, _ := NewDiscrete(3)
	ps := NewPair(d1, d2)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		sample := ps.Sample(rng)
		assert.True(t, sample[0] >= 0 && sample[0] < 2)
		assert.True(t, sample[1] >= 0 && sample[1] < 3)
	}

	assert.Equal(t, 2, ps.Dim())
	assert.Equal(t, Finite(6), ps.Span())
}

func TestSpanMul(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"null-finite", Null(), Finite(3), Finite(3)},
		{"finite-null", Finite(3), Null(), Finite(3)},
		{"finite-finite", Finite(3), Finite(4), Finite(12)},
		{"finite-infinite", Finite(3), Infinite(), Infinite()},
		{"null-null", Null(), Null(), Null()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.a.Mul(test.b))
		})
	}

	n, ok := Infinite().Int()
	assert.False(t, ok)
	assert.Zero(t, n)
}

func TestRegularSpan(t *testing.T) {
	p, err := NewPartitioned(0, 1, 4)
	require.NoError(t, err)
	c, err := NewContinuous(0, 1)
	require.NoError(t, err)

	finite := NewRegular(p, p, p)
	assert.Equal(t, Finite(64), finite.Span())
	assert.Equal(t, 3, finite.Dim())

	infinite := NewRegular(p, c)
	assert.Equal(t, Infinite(), infinite.Span())

	_, err = infinite.Centres()
	assert.Error(t, err)
}

func TestPartitionedConvert(t *testing.T) {
	p, err := NewPartitioned(0, 10, 10)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, i, p.Convert(float64(i)))
		assert.Equal(t, i, p.Convert(float64(i)+0.5))
	}

	// Out of range values saturate
	assert.Equal(t, 0, p.Convert(-3))
	assert.Equal(t, 9, p.Convert(10))
	assert.Equal(t, 9, p.Convert(1e6))
	assert.Equal(t, 0, p.Convert(math.Inf(-1)))
	assert.Panics(t, func() { p.Convert(math.NaN()) })

	assert.InDelta(t, 1.0, p.PartitionWidth(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5, 6.5,
		7.5, 8.5, 9.5}, p.Centres(), 1e-12)
}

func TestInvalidDimensions(t *testing.T) {
	_, err := NewDiscrete(0)
	assert.Error(t, err)

	_, err = NewContinuous(1, 1)
	assert.Error(t, err)

	_, err = NewPartitioned(0, 1, 0)
	assert.Error(t, err)

	_, err = NewPartitioned(2, 1, 3)
	assert.Error(t, err)
}

func TestWithPartitions(t *testing.T) {
	c, _ := NewContinuous(-1, 1)
	d, _ := NewDiscrete(5)

	r, err := WithPartitions(NewPair(c, d), 8)
	require.NoError(t, err)
	assert.Equal(t, Finite(40), r.Span())

	parts, err := r.Partitions()
	require.NoError(t, err)
	assert.Equal(t, 8, parts[0].Density())
	assert.Equal(t, 5, parts[1].Density())

	// Each discrete value falls in its own bin
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, parts[1].Convert(float64(i)))
	}
}

func TestCartesianProduct(t *testing.T) {
	out := CartesianProduct([][]float64{{1, 2}, {3, 4, 5}})
	want := [][]float64{
		{1, 3}, {1, 4}, {1, 5},
		{2, 3}, {2, 4}, {2, 5},
	}
	assert.Equal(t, want, out)
	assert.Nil(t, CartesianProduct(nil))
}
