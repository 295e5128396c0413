package projection

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Kernel computes the similarity between two points
type Kernel interface {
	Kernel(x, y []float64) float64
}

// Gaussian is the squared exponential kernel
//
//	k(x, y) = σ² exp(-‖x - y‖² / 2ℓ²)
type Gaussian struct {
	Length   float64
	Variance float64
}

// Kernel implements the Kernel interface
func (g Gaussian) Kernel(x, y []float64) float64 {
	d := floats.Distance(x, y, 2)
	return g.Variance * math.Exp(-d*d/(2*g.Length*g.Length))
}

// Exponential is the exponential kernel
//
//	k(x, y) = σ² exp(-‖x - y‖ / ℓ)
type Exponential struct {
	Length   float64
	Variance float64
}

// Kernel implements the Kernel interface
func (e Exponential) Kernel(x, y []float64) float64 {
	return e.Variance * math.Exp(-floats.Distance(x, y, 2)/e.Length)
}

// Matern32 is the Matérn kernel with ν = 3/2
type Matern32 struct {
	Length   float64
	Variance float64
}

// Kernel implements the Kernel interface
func (m Matern32) Kernel(x, y []float64) float64 {
	r := math.Sqrt(3) * floats.Distance(x, y, 2) / m.Length
	return m.Variance * (1 + r) * math.Exp(-r)
}
