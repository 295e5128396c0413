package spaces

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Regular is a space of an arbitrary number of Dimensions
type Regular struct {
	dimensions []Dimension
	span       Span
}

// NewRegular returns a new Regular space over the argument dimensions
func NewRegular(dims ...Dimension) *Regular {
	r := &Regular{span: Null()}
	for _, d := range dims {
		r.Push(d)
	}
	return r
}

// Push appends a dimension to the space
func (r *Regular) Push(d Dimension) *Regular {
	r.span = r.span.Mul(d.Span())
	r.dimensions = append(r.dimensions, d)
	return r
}

// Sample samples a point from the space
func (r *Regular) Sample(rng *rand.Rand) []float64 {
	out := make([]float64, len(r.dimensions))
	for i, d := range r.dimensions {
		out[i] = d.Sample(rng)
	}
	return out
}

// Dim returns the number of dimensions in the space
func (r *Regular) Dim() int {
	return len(r.dimensions)
}

// Span returns the span of the space
func (r *Regular) Span() Span {
	return r.span
}

// Dimensions returns the dimensions of the space
func (r *Regular) Dimensions() []Dimension {
	return r.dimensions
}

// Partitions returns each dimension of the space as a Partitioned
// dimension. An error is returned if any dimension is not Partitioned.
func (r *Regular) Partitions() ([]Partitioned, error) {
	return partitions(r)
}

// Centres returns the bin centres of each dimension. An error is
// returned if any dimension is not Partitioned.
func (r *Regular) Centres() ([][]float64, error) {
	parts, err := r.Partitions()
	if err != nil {
		return nil, err
	}

	centres := make([][]float64, len(parts))
	for i, p := range parts {
		centres[i] = p.Centres()
	}
	return centres, nil
}

// String implements the fmt.Stringer interface
func (r *Regular) String() string {
	return fmt.Sprintf("Regular%v", r.dimensions)
}
