package projection

import (
	"fmt"
	"math"
)

// TileCoding is a sparse projection implementing hashed tile coding.
//
// Each of nTilings tilings covers input space with unit-width tiles
// (after scaling), offset from one another by an asymmetric
// displacement. The coordinates of the tile containing an input in
// each tiling, together with the tiling index and an integer selector,
// are hashed into a fixed-size memory. Since tiles are hashed,
// distinct tiles may share a feature.
type TileCoding struct {
	nTilings   int
	memorySize int
	scale      []float64
	hasher     Hasher
}

// NewTileCoding returns a new TileCoding projection. The scale
// argument determines the dimensionality of inputs and the number of
// tiles per unit along each dimension: an input x is tiled as
// x[i] * scale[i]. If hasher is nil, a UNH seeded with
// DefaultHashSeed is used.
func NewTileCoding(nTilings, memorySize int, scale []float64,
	hasher Hasher) (*TileCoding, error) {
	if nTilings < 1 {
		return nil, fmt.Errorf("newTileCoding: at least one tiling is "+
			"required: have(%d)", nTilings)
	}
	if memorySize < 1 {
		return nil, fmt.Errorf("newTileCoding: memory size must be "+
			"positive: have(%d)", memorySize)
	}
	if len(scale) == 0 {
		return nil, fmt.Errorf("newTileCoding: inputs must have at " +
			"least one dimension")
	}

	if hasher == nil {
		hasher = NewUNH(DefaultHashSeed)
	}

	return &TileCoding{nTilings, memorySize, scale, hasher}, nil
}

// ProjectSelect returns the indices of the active tiles of x, hashed
// together with the argument selector. Different selectors produce
// (up to collisions) disjoint sets of features for the same input.
func (t *TileCoding) ProjectSelect(x []float64, selector int) []int {
	checkDim("tileCoding", x, len(t.scale))

	n := len(x)
	qstate := make([]int, n)
	base := make([]int, n)
	coordinates := make([]int, n+2)

	for i, v := range x {
		qstate[i] = int(math.Floor(v * t.scale[i] * float64(t.nTilings)))
	}
	coordinates[n+1] = selector

	tiles := make([]int, t.nTilings)
	for j := 0; j < t.nTilings; j++ {
		for i := 0; i < n; i++ {
			if qstate[i] >= base[i] {
				coordinates[i] = qstate[i] - ((qstate[i] - base[i]) % t.nTilings)
			} else {
				coordinates[i] = qstate[i] + 1 +
					((base[i] - qstate[i] - 1) % t.nTilings) - t.nTilings
			}
			base[i] += 1 + 2*i
		}
		coordinates[n] = j

		tiles[j] = t.hasher.Hash(coordinates, t.memorySize)
	}
	return tiles
}

// ProjectSparse implements the Sparse interface using selector 0
func (t *TileCoding) ProjectSparse(x []float64) []int {
	return t.ProjectSelect(x, 0)
}

// Sparsity returns the number of tilings
func (t *TileCoding) Sparsity() int {
	return t.nTilings
}

// Dim returns the dimensionality of inputs
func (t *TileCoding) Dim() int {
	return len(t.scale)
}

// Size returns the size of the hash memory
func (t *TileCoding) Size() int {
	return t.memorySize
}

// Equivalent returns whether other is a TileCoding with the same
// number of tilings, memory size, and input dimension
func (t *TileCoding) Equivalent(other Base) bool {
	o, ok := other.(*TileCoding)
	return ok && o.nTilings == t.nTilings && o.Size() == t.Size() &&
		o.Dim() == t.Dim()
}
