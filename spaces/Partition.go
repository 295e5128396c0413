package spaces

import "fmt"

// WithPartitions returns a Regular space where each Continuous
// dimension of s is partitioned into density bins. Discrete dimensions
// with n values are converted into Partitioned dimensions with one bin
// per value. Partitioned dimensions are kept as is.
func WithPartitions(s Space, density int) (*Regular, error) {
	out := NewRegular()
	for i, d := range s.Dimensions() {
		switch dim := d.(type) {
		case Continuous:
			p, err := dim.Partitioned(density)
			if err != nil {
				return nil, fmt.Errorf("withPartitions: dimension %d: %v",
					i, err)
			}
			out.Push(p)

		case Discrete:
			p, err := NewPartitioned(0, float64(dim.Len()), dim.Len())
			if err != nil {
				return nil, fmt.Errorf("withPartitions: dimension %d: %v",
					i, err)
			}
			out.Push(p)

		case Partitioned:
			out.Push(dim)

		default:
			return nil, fmt.Errorf("withPartitions: cannot partition "+
				"dimension %d of type %T", i, d)
		}
	}
	return out, nil
}

// partitions returns the dimensions of s as Partitioned dimensions
func partitions(s Space) ([]Partitioned, error) {
	dims := s.Dimensions()
	parts := make([]Partitioned, len(dims))
	for i, d := range dims {
		p, ok := d.(Partitioned)
		if !ok {
			return nil, fmt.Errorf("dimension %d is not partitioned: %v",
				i, d)
		}
		parts[i] = p
	}
	return parts, nil
}

// Partitions returns each dimension of s as a Partitioned dimension.
// An error is returned if any dimension is not Partitioned.
func Partitions(s Space) ([]Partitioned, error) {
	return partitions(s)
}

// CartesianProduct returns every combination of one element from each
// of the argument slices. The last slice varies fastest.
func CartesianProduct(sets [][]float64) [][]float64 {
	if len(sets) == 0 {
		return nil
	}

	n := 1
	for _, s := range sets {
		n *= len(s)
	}

	out := make([][]float64, n)
	for i := range out {
		combination := make([]float64, len(sets))
		rem := i
		for d := len(sets) - 1; d >= 0; d-- {
			combination[d] = sets[d][rem%len(sets[d])]
			rem /= len(sets[d])
		}
		out[i] = combination
	}
	return out
}
