package spaces

import (
	"golang.org/x/exp/rand"
)

// Space is an ordered composition of Dimensions
type Space interface {
	// Sample draws a point uniformly from the space
	Sample(rng *rand.Rand) []float64

	// Dim returns the number of dimensions in the space
	Dim() int

	// Span returns the product of the spans of each dimension
	Span() Span

	// Dimensions returns the dimensions composing the space in order
	Dimensions() []Dimension
}

// NullSpace is a space with no dimensions
type NullSpace struct{}

// Sample returns an empty point
func (NullSpace) Sample(*rand.Rand) []float64 { return []float64{} }

// Dim returns 0
func (NullSpace) Dim() int { return 0 }

// Span returns the null span
func (NullSpace) Span() Span { return Null() }

// Dimensions returns nil
func (NullSpace) Dimensions() []Dimension { return nil }

// Unitary is a space consisting of a single Dimension
type Unitary struct {
	Dimension
}

// NewUnitary returns a new Unitary space over d
func NewUnitary(d Dimension) Unitary {
	return Unitary{d}
}

// Sample samples a point from the space
func (u Unitary) Sample(rng *rand.Rand) []float64 {
	return []float64{u.Dimension.Sample(rng)}
}

// Dim returns 1
func (u Unitary) Dim() int { return 1 }

// Dimensions returns the single dimension of the space
func (u Unitary) Dimensions() []Dimension {
	return []Dimension{u.Dimension}
}

// NewActionSpace returns the space of n discrete actions
func NewActionSpace(n int) (Unitary, error) {
	d, err := NewDiscrete(n)
	if err != nil {
		return Unitary{}, err
	}
	return NewUnitary(d), nil
}

// Pair is a space consisting of two Dimensions
type Pair struct {
	first, second Dimension
}

// NewPair returns a new Pair space
func NewPair(first, second Dimension) Pair {
	return Pair{first, second}
}

// Sample samples a point from the space
func (p Pair) Sample(rng *rand.Rand) []float64 {
	return []float64{p.first.Sample(rng), p.second.Sample(rng)}
}

// Dim returns 2
func (p Pair) Dim() int { return 2 }

// Span returns the span of the space
func (p Pair) Span() Span {
	return p.first.Span().Mul(p.second.Span())
}

// Dimensions returns the two dimensions of the space
func (p Pair) Dimensions() []Dimension {
	return []Dimension{p.first, p.second}
}
