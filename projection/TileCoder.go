package projection

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"

	"github.com/samuelfneumann/tdcontrol/utils/floatutils"
)

// Controls tiling offsets. For each dimension, tilings are offset by
// randomly sampling from a uniform distribution with support
// [- tiling width/OffsetDiv, tiling width/OffsetDiv]
const OffsetDiv float64 = 1.5

// TileCoder implements dense (non-hashed) tile coding. Tile coding
// takes a low-dimensional vector and changes it into a large, sparse
// vector consisting of only 0's and 1's. Each 1 represents the
// coordinates of the original vector in some space of tilings. For
// example:
//
//	[0.5, 0.1] -> [0, 0, 0, 1, 0, 0, 1, 0]
//
// The number of nonzero elements in the tile-coded representation
// equals the number of tilings used to encode the vector (plus one if
// a bias unit is used). Each tiling fully covers the bounded box it
// is constructed with, so no two tiles share a feature. Inputs outside
// of the box are clipped to the edge tiles.
//
// TileCoder is both a dense and a sparse projection.
type TileCoder struct {
	bounds      []r1.Interval
	offsets     *mat.Dense // numTilings x dims
	bins        [][]int
	binLengths  [][]float64
	starts      []int // index of the first feature of each tiling
	size        int
	includeBias bool
}

// NewTileCoder creates and returns a new TileCoder. The bounds argument
// gives the box, for each dimension, between which tilings are placed.
//
// The bins argument determines both the number of tilings to use and
// the number of tiles per each tiling. The number of elements in the
// outer slice determines the number of tilings to use. The sub-slices
// determine how many tiles are placed along each dimension for the
// respective tiling. For example, if bins := [][]int{{2, 2}, {4, 3}},
// then the TileCoder uses two tilings. The first tiling is a 2x2
// tiling. The second tiling uses 4 tiles along the first dimension and
// 3 tiles along the second dimension.
//
// The parameter includeBias determines whether or not a bias unit is
// kept as the first unit in the tile coded representation.
func NewTileCoder(bounds []r1.Interval, bins [][]int, seed uint64,
	includeBias bool) (*TileCoder, error) {
	if len(bounds) == 0 {
		return nil, fmt.Errorf("newTileCoder: at least one dimension is " +
			"required")
	}
	if len(bins) == 0 {
		return nil, fmt.Errorf("newTileCoder: at least one tiling is " +
			"required")
	}
	for i, b := range bounds {
		if b.Min >= b.Max {
			return nil, fmt.Errorf("newTileCoder: dimension %d has empty "+
				"bounds [%v, %v]", i, b.Min, b.Max)
		}
	}

	numTilings := len(bins)
	dims := len(bounds)
	binLengths := make([][]float64, numTilings)
	starts := make([]int, numTilings)
	var offsetBounds []r1.Interval

	bias := 0
	if includeBias {
		bias = 1
	}
	size := bias

	for j := 0; j < numTilings; j++ {
		if len(bins[j]) != dims {
			return nil, fmt.Errorf("newTileCoder: tiling %d should have "+
				"one number of bins for each dimension \n\twant(%d) "+
				"\n\thave(%d)", j, dims, len(bins[j]))
		}

		starts[j] = size
		tiles := 1
		binLengths[j] = make([]float64, dims)
		for i := 0; i < dims; i++ {
			if bins[j][i] < 1 {
				return nil, fmt.Errorf("newTileCoder: tiling %d dimension "+
					"%d must have at least one bin", j, i)
			}
			tiles *= bins[j][i]

			binLength := (bounds[i].Max - bounds[i].Min) / float64(bins[j][i])
			bound := binLength / OffsetDiv // Bounds tiling offsets

			binLengths[j][i] = binLength
			offsetBounds = append(offsetBounds,
				r1.Interval{Min: -bound, Max: bound})
		}
		size += tiles
	}

	// Sample tiling offsets uniformly, one row per tiling
	source := rand.NewSource(seed)
	u := distmv.NewUniform(offsetBounds, source)
	sampler := samplemv.IID{Dist: u}
	flat := mat.NewDense(1, len(offsetBounds), nil)
	sampler.Sample(flat)
	offsets := mat.NewDense(numTilings, dims, flat.RawMatrix().Data)

	return &TileCoder{bounds, offsets, bins, binLengths, starts, size,
		includeBias}, nil
}

// encodeWithTiling returns the index of the tile coded feature vector
// which should be a 1.0 when x is encoded with the argument tiling
func (t *TileCoder) encodeWithTiling(x []float64, tiling int) int {
	index := 0
	for i := range t.bounds {
		// Offset the tiling
		data := x[i] + t.offsets.At(tiling, i)

		// Calculate the index of the tile along the current dimension
		tile := math.Floor((data - t.bounds[i].Min) / t.binLengths[tiling][i])
		tile = floatutils.Clip(tile, 0.0, float64(t.bins[tiling][i]-1))

		index = index*t.bins[tiling][i] + int(tile)
	}
	return t.starts[tiling] + index
}

// ProjectSparse returns the non-zero indices of the tile coded vector
// of x. If a bias unit is used, index 0 is always active.
func (t *TileCoder) ProjectSparse(x []float64) []int {
	checkDim("tileCoder", x, len(t.bounds))

	indices := make([]int, 0, t.Sparsity())
	if t.includeBias {
		indices = append(indices, 0)
	}
	for j := range t.bins {
		indices = append(indices, t.encodeWithTiling(x, j))
	}
	return indices
}

// Project returns the tile coded vector of x
func (t *TileCoder) Project(x []float64) *mat.VecDense {
	return ToDense(t.ProjectSparse(x), t.size)
}

// ProjectOnto overwrites phi with the tile coded vector of x
func (t *TileCoder) ProjectOnto(x []float64, phi *mat.VecDense) {
	checkSize("tileCoder", phi, t.size)
	phi.Zero()
	for _, i := range t.ProjectSparse(x) {
		phi.SetVec(i, 1.0)
	}
}

// Sparsity returns the number of active features in every tile coded
// vector
func (t *TileCoder) Sparsity() int {
	if t.includeBias {
		return len(t.bins) + 1
	}
	return len(t.bins)
}

// NumTilings returns the number of tilings the tile coder uses for
// encoding vectors
func (t *TileCoder) NumTilings() int {
	return len(t.bins)
}

// Dim returns the dimensionality of inputs
func (t *TileCoder) Dim() int {
	return len(t.bounds)
}

// Size returns the number of features in a tile-coded vector
func (t *TileCoder) Size() int {
	return t.size
}

// Equivalent returns whether other has the same input dimension and
// number of features
func (t *TileCoder) Equivalent(other Base) bool {
	return t.Dim() == other.Dim() && t.Size() == other.Size()
}

// String returns a string representation of a *TileCoder
func (t *TileCoder) String() string {
	return fmt.Sprintf("Tilings %d  |  Tiles: %v", len(t.bins), t.bins)
}
