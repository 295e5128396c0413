// Package weights defines initializers for the weight matrices of
// linear function approximators. Weight matrices have one row per
// feature and one column per output.
package weights

import "gonum.org/v1/gonum/mat"

// Initializer initializes weights
type Initializer interface {
	Initialize(weights *mat.Dense) // initializes weights in place
}

// Zero returns an Initializer which sets all weights to 0
func Zero() Initializer {
	return NewLinearUV(NewConstantUV(0))
}

// Constant returns an Initializer which sets all weights to v. A
// positive v is an optimistic initialization for agents maximising
// return.
func Constant(v float64) Initializer {
	return NewLinearUV(NewConstantUV(v))
}
