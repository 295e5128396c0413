package spaces

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r1"
)

// ErrInfiniteSpan is returned when a finite span is required but the
// span of a space is infinite
var ErrInfiniteSpan = errors.New("spaces: span is not finite")

// Dimension describes a single scalar axis of a space
type Dimension interface {
	// Sample draws a value uniformly from the dimension
	Sample(rng *rand.Rand) float64

	// Span returns the cardinality of the dimension
	Span() Span

	// Bounds returns the smallest and largest values on the dimension
	Bounds() r1.Interval
}
