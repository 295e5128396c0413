package spaces

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/tdcontrol/utils/floatutils"
)

// Partitioned is a continuous dimension [min, max] quantized into
// density bins of equal width
type Partitioned struct {
	bounds  r1.Interval
	density int
}

// NewPartitioned returns a new Partitioned dimension
func NewPartitioned(min, max float64, density int) (Partitioned, error) {
	if min >= max {
		return Partitioned{}, fmt.Errorf("newPartitioned: lower bound "+
			"must be smaller than upper bound: %v >= %v", min, max)
	}
	if density < 1 {
		return Partitioned{}, fmt.Errorf("newPartitioned: density must "+
			"be positive: have(%d)", density)
	}
	return Partitioned{r1.Interval{Min: min, Max: max}, density}, nil
}

// Density returns the number of bins in the dimension
func (p Partitioned) Density() int {
	return p.density
}

// PartitionWidth returns the width of each bin
func (p Partitioned) PartitionWidth() float64 {
	return (p.bounds.Max - p.bounds.Min) / float64(p.density)
}

// Centres returns the centre of each bin
func (p Partitioned) Centres() []float64 {
	w := p.PartitionWidth()
	centres := make([]float64, p.density)
	for i := range centres {
		centres[i] = p.bounds.Min + w*(float64(i)+0.5)
	}
	return centres
}

// Convert returns the index of the bin that v falls in. Values
// outside the bounds of the dimension saturate to the first or last
// bin. Convert panics if v is NaN.
func (p Partitioned) Convert(v float64) int {
	if math.IsNaN(v) {
		panic(fmt.Sprintf("convert: cannot partition NaN in [%v, %v]",
			p.bounds.Min, p.bounds.Max))
	}
	bin := math.Floor((v - p.bounds.Min) / p.PartitionWidth())
	return int(floatutils.Clip(bin, 0, float64(p.density-1)))
}

// Sample samples a value uniformly from the dimension
func (p Partitioned) Sample(rng *rand.Rand) float64 {
	return p.bounds.Min + rng.Float64()*(p.bounds.Max-p.bounds.Min)
}

// Span returns the span of the dimension
func (p Partitioned) Span() Span {
	return Finite(p.density)
}

// Bounds returns the bounds of the dimension
func (p Partitioned) Bounds() r1.Interval {
	return p.bounds
}

// String implements the fmt.Stringer interface
func (p Partitioned) String() string {
	return fmt.Sprintf("Partitioned[%v, %v; %d]", p.bounds.Min,
		p.bounds.Max, p.density)
}
