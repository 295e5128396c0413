// Package spaces implements the dimensions and spaces that describe
// the states and actions of a domain.
//
// A Dimension describes a single scalar axis, which may be discrete,
// continuous, or a continuous axis partitioned into a number of equal
// width bins. A Space is an ordered composition of Dimensions. Every
// point in a Space is represented as a []float64, with discrete values
// stored as integral floats.
package spaces

import "fmt"

// SpanKind denotes whether a Span is null, finite, or infinite
type SpanKind int

const (
	NullSpan SpanKind = iota
	FiniteSpan
	InfiniteSpan
)

// Span is the cardinality of a Dimension or Space
type Span struct {
	kind SpanKind
	n    int
}

// Null returns the span of a space with no dimensions
func Null() Span {
	return Span{kind: NullSpan}
}

// Finite returns the span of a space with n elements
func Finite(n int) Span {
	return Span{kind: FiniteSpan, n: n}
}

// Infinite returns the span of an unbounded or continuous space
func Infinite() Span {
	return Span{kind: InfiniteSpan}
}

// Kind returns the kind of the Span
func (s Span) Kind() SpanKind {
	return s.kind
}

// Int returns the number of elements spanned and whether that number
// is finite. A Null span spans a single element.
func (s Span) Int() (int, bool) {
	switch s.kind {
	case NullSpan:
		return 1, true
	case FiniteSpan:
		return s.n, true
	default:
		return 0, false
	}
}

// Mul returns the span of the product of two spaces
func (s Span) Mul(o Span) Span {
	switch {
	case s.kind == NullSpan:
		return o
	case o.kind == NullSpan:
		return s
	case s.kind == InfiniteSpan || o.kind == InfiniteSpan:
		return Infinite()
	default:
		return Finite(s.n * o.n)
	}
}

// String implements the fmt.Stringer interface
func (s Span) String() string {
	switch s.kind {
	case NullSpan:
		return "Null"
	case FiniteSpan:
		return fmt.Sprintf("Finite(%d)", s.n)
	default:
		return "Infinite"
	}
}
