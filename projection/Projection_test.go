package projection

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/tdcontrol/spaces"
)

func grid(t testing.TB, dims int) *UniformGrid {
	space := spaces.NewRegular()
	for i := 0; i < dims; i++ {
		p, err := spaces.NewPartitioned(0, 10, 10)
		require.NoError(t, err)
		space.Push(p)
	}

	g, err := NewUniformGrid(space)
	require.NoError(t, err)
	return g
}

func TestUniformGrid1D(t *testing.T) {
	g := grid(t, 1)
	assert.Equal(t, 10, g.Size())
	assert.Equal(t, 1, g.Dim())

	for i := 0; i < 10; i++ {
		phi := g.Project([]float64{float64(i) + 0.5})
		require.Equal(t, 10, phi.Len())
		assert.Equal(t, 1.0, mat.Sum(phi))
		assert.Equal(t, 1.0, phi.AtVec(i))
	}
}

func TestUniformGrid2D(t *testing.T) {
	g := grid(t, 2)
	assert.Equal(t, 100, g.Size())

	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			x := []float64{float64(i) + 0.5, float64(j) + 0.5}
			phi := g.Project(x)
			assert.Equal(t, 1.0, mat.Sum(phi))
			assert.Equal(t, 1.0, phi.AtVec(j*10+i))
			assert.Equal(t, []int{j*10 + i}, g.ProjectSparse(x))
		}
	}
}

func TestUniformGrid3D(t *testing.T) {
	g := grid(t, 3)
	assert.Equal(t, 1000, g.Size())

	phi := mat.NewVecDense(1000, nil)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			for k := 0; k < 10; k++ {
				x := []float64{float64(i) + 0.5, float64(j) + 0.5,
					float64(k) + 0.5}
				g.ProjectOnto(x, phi)
				assert.Equal(t, 1.0, mat.Sum(phi))
				assert.Equal(t, 1.0, phi.AtVec(k*100+j*10+i))
			}
		}
	}
}

func TestUniformGridSaturates(t *testing.T) {
	g := grid(t, 1)

	assert.Equal(t, 0, g.Index([]float64{-5}))
	assert.Equal(t, 9, g.Index([]float64{15}))
	assert.Equal(t, 9, g.Index([]float64{10}))
}

func TestUniformGridNaNPanics(t *testing.T) {
	g := grid(t, 2)
	assert.Panics(t, func() { g.Index([]float64{math.NaN(), 1}) })
	assert.Panics(t, func() { g.ProjectSparse([]float64{1, math.NaN()}) })
}

func TestUniformGridErrors(t *testing.T) {
	c, err := spaces.NewContinuous(0, 1)
	require.NoError(t, err)

	_, err = NewUniformGrid(spaces.NewRegular(c))
	assert.True(t, errors.Is(err, ErrNotPartitioned))

	_, err = NewUniformGrid(spaces.NewRegular())
	assert.Error(t, err)
}

func TestUniformGridEquivalent(t *testing.T) {
	assert.True(t, grid(t, 2).Equivalent(grid(t, 2)))
	assert.False(t, grid(t, 2).Equivalent(grid(t, 3)))
}

func TestUniformGridDimensionMismatchPanics(t *testing.T) {
	g := grid(t, 2)
	assert.Panics(t, func() { g.Project([]float64{0.5}) })
	assert.Panics(t, func() {
		g.ProjectOnto([]float64{0.5, 0.5}, mat.NewVecDense(3, nil))
	})
}

func TestRBFPartitionOfUnity(t *testing.T) {
	p1, _ := spaces.NewPartitioned(0, 1, 5)
	p2, _ := spaces.NewPartitioned(-1, 1, 4)
	r, err := NewRBF(spaces.NewRegular(p1, p2))
	require.NoError(t, err)

	assert.Equal(t, 20, r.Size())
	assert.Equal(t, 2, r.Dim())

	inputs := [][]float64{
		{0, 0}, {0.5, 0.5}, {1, -1}, {0.33, 0.77}, {100, -100},
	}
	for _, x := range inputs {
		phi := r.Project(x)
		assert.InDelta(t, 1.0, mat.Sum(phi), 1e-9)
		for i := 0; i < phi.Len(); i++ {
			assert.GreaterOrEqual(t, phi.AtVec(i), 0.0)
		}
	}
}

func TestRBFPeaksAtCentre(t *testing.T) {
	p, _ := spaces.NewPartitioned(0, 1, 4)
	r, err := NewRBF(spaces.NewUnitary(p))
	require.NoError(t, err)

	for i, c := range p.Centres() {
		phi := r.Project([]float64{c})
		assert.Equal(t, i, floats.MaxIdx(phi.RawVector().Data))
	}
}

func TestRBFErrors(t *testing.T) {
	c, _ := spaces.NewContinuous(0, 1)
	_, err := NewRBF(spaces.NewUnitary(c))
	assert.Error(t, err)

	d, _ := spaces.NewDiscrete(3)
	_, err = NewRBF(spaces.NewUnitary(d))
	assert.True(t, errors.Is(err, ErrNotPartitioned))
}

func TestBasisNetwork(t *testing.T) {
	bases := []BasisFunction{
		{Loc: []float64{0, 0}, Kernel: Gaussian{Length: 1, Variance: 1}},
		{Loc: []float64{1, 1}, Kernel: Gaussian{Length: 1, Variance: 2}},
	}
	b, err := NewBasisNetwork(bases)
	require.NoError(t, err)

	assert.Equal(t, 2, b.Size())
	assert.Equal(t, 2, b.Dim())

	phi := b.Project([]float64{0, 0})
	assert.InDelta(t, 1.0, phi.AtVec(0), 1e-12)
	assert.InDelta(t, 2*0.36787944117144233, phi.AtVec(1), 1e-12)

	other, _ := NewBasisNetwork(bases)
	assert.True(t, b.Equivalent(other))

	moved, _ := NewBasisNetwork([]BasisFunction{
		bases[0],
		{Loc: []float64{2, 2}, Kernel: Gaussian{Length: 1, Variance: 1}},
	})
	assert.False(t, b.Equivalent(moved))
}

func TestBasisNetworkErrors(t *testing.T) {
	_, err := NewBasisNetwork(nil)
	assert.Error(t, err)

	_, err = NewBasisNetwork([]BasisFunction{
		{Loc: []float64{0}, Kernel: Exponential{Length: 1, Variance: 1}},
		{Loc: []float64{0, 1}, Kernel: Exponential{Length: 1, Variance: 1}},
	})
	assert.Error(t, err)
}

func TestKernels(t *testing.T) {
	x := []float64{0, 0}
	assert.Equal(t, 1.0, Exponential{Length: 1, Variance: 1}.Kernel(x, x))
	assert.Equal(t, 1.0, Matern32{Length: 1, Variance: 1}.Kernel(x, x))
	assert.Less(t, Matern32{Length: 1, Variance: 1}.Kernel(x,
		[]float64{1, 0}), 1.0)
}

func TestTileCodingDeterministic(t *testing.T) {
	tc, err := NewTileCoding(8, 2048, []float64{1, 1}, nil)
	require.NoError(t, err)

	x := []float64{0.3, 0.7}
	tiles := tc.ProjectSparse(x)
	assert.Len(t, tiles, 8)
	assert.Equal(t, tiles, tc.ProjectSparse(x))
	for _, i := range tiles {
		assert.True(t, i >= 0 && i < 2048)
	}

	assert.Equal(t, 8, tc.Sparsity())
	assert.Equal(t, 2048, tc.Size())
	assert.Equal(t, 2, tc.Dim())
}

func TestTileCodingGeneralisation(t *testing.T) {
	// With 8 tilings, inputs in the same 1/8th of a unit share every
	// tile
	tc, err := NewTileCoding(8, 1<<20, []float64{1}, nil)
	require.NoError(t, err)

	assert.Equal(t, tc.ProjectSparse([]float64{0.5}),
		tc.ProjectSparse([]float64{0.51}))

	near := shared(tc.ProjectSparse([]float64{0.5}),
		tc.ProjectSparse([]float64{0.75}))
	far := shared(tc.ProjectSparse([]float64{0.5}),
		tc.ProjectSparse([]float64{10.5}))
	assert.Greater(t, near, far)
	assert.Equal(t, 0, far)
}

func TestTileCodingSelector(t *testing.T) {
	tc, err := NewTileCoding(4, 1<<20, []float64{1}, NewUNH(1))
	require.NoError(t, err)

	x := []float64{0.2}
	assert.Equal(t, tc.ProjectSparse(x), tc.ProjectSelect(x, 0))
	assert.NotEqual(t, tc.ProjectSelect(x, 0), tc.ProjectSelect(x, 1))
}

func TestTileCodingErrors(t *testing.T) {
	_, err := NewTileCoding(0, 10, []float64{1}, nil)
	assert.Error(t, err)
	_, err = NewTileCoding(1, 0, []float64{1}, nil)
	assert.Error(t, err)
	_, err = NewTileCoding(1, 10, nil, nil)
	assert.Error(t, err)
}

func TestTileCodingEquivalent(t *testing.T) {
	a, _ := NewTileCoding(4, 64, []float64{1}, nil)
	b, _ := NewTileCoding(4, 64, []float64{2}, nil)
	c, _ := NewTileCoding(8, 64, []float64{1}, nil)

	assert.True(t, a.Equivalent(b))
	assert.False(t, a.Equivalent(c))
}

func TestTileCoder(t *testing.T) {
	bounds := []r1.Interval{{Min: 0, Max: 1}, {Min: -1, Max: 1}}
	tc, err := NewTileCoder(bounds, [][]int{{2, 2}, {4, 3}}, 7, true)
	require.NoError(t, err)

	assert.Equal(t, 17, tc.Size())
	assert.Equal(t, 3, tc.Sparsity())
	assert.Equal(t, 2, tc.NumTilings())

	for _, x := range [][]float64{{0, 0}, {0.5, 0.5}, {1, 1}, {-3, 3}} {
		indices := tc.ProjectSparse(x)
		require.Len(t, indices, 3)
		assert.Equal(t, 0, indices[0])
		assert.True(t, indices[1] >= 1 && indices[1] < 5)
		assert.True(t, indices[2] >= 5 && indices[2] < 17)

		phi := tc.Project(x)
		assert.Equal(t, 3.0, mat.Sum(phi))
	}
}

func TestTileCoderErrors(t *testing.T) {
	bounds := []r1.Interval{{Min: 0, Max: 1}}

	_, err := NewTileCoder(nil, [][]int{{2}}, 1, false)
	assert.Error(t, err)
	_, err = NewTileCoder(bounds, nil, 1, false)
	assert.Error(t, err)
	_, err = NewTileCoder(bounds, [][]int{{2, 2}}, 1, false)
	assert.Error(t, err)
	_, err = NewTileCoder(bounds, [][]int{{0}}, 1, false)
	assert.Error(t, err)
	_, err = NewTileCoder([]r1.Interval{{Min: 1, Max: 1}}, [][]int{{2}}, 1,
		false)
	assert.Error(t, err)
}

func TestConfigJSON(t *testing.T) {
	d, _ := spaces.NewContinuous(-1, 1)
	space := spaces.NewRegular(d, d)

	configs := []Config{
		NewConfig(UniformGridConfig{Partitions: 4}),
		NewConfig(RBFConfig{Partitions: 3}),
		NewConfig(TileCodingConfig{Tilings: 4, Memory: 512, TilesPerDim: 4}),
		NewConfig(TileCoderConfig{Bins: [][]int{{2, 2}}, Bias: true}),
	}
	sizes := []int{16, 9, 512, 5}

	for i, c := range configs {
		data, err := json.Marshal(c)
		require.NoError(t, err)

		var decoded Config
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, c.Type, decoded.Type)

		p, err := decoded.Create(space, 1)
		require.NoError(t, err)
		assert.Equal(t, sizes[i], p.Size())
		assert.Equal(t, 2, p.Dim())
	}

	var bad Config
	assert.Error(t, json.Unmarshal([]byte(`{"Type": "Nope"}`), &bad))
}

func shared(a, b []int) int {
	set := make(map[int]bool, len(a))
	for _, i := range a {
		set[i] = true
	}

	n := 0
	for _, i := range b {
		if set[i] {
			n++
		}
	}
	return n
}

func BenchmarkTileCoder(b *testing.B) {
	bounds := make([]r1.Interval, 8)
	bins := []int{8, 8, 8, 8, 8, 8, 8, 8}
	y := make([]float64, 8)
	for i := range bounds {
		bounds[i] = r1.Interval{Min: 0, Max: 1}
		y[i] = 0.5
	}
	tc, err := NewTileCoder(bounds, [][]int{bins}, 12, true)
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		tc.ProjectSparse(y)
	}
}

func BenchmarkTileCoding(b *testing.B) {
	tc, err := NewTileCoding(16, 4096, []float64{8, 8, 8, 8}, nil)
	if err != nil {
		b.Fatal(err)
	}
	y := []float64{0.1, 0.2, 0.3, 0.4}

	for i := 0; i < b.N; i++ {
		tc.ProjectSparse(y)
	}
}
