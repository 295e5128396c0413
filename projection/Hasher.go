package projection

import (
	"golang.org/x/exp/rand"
)

// Hasher maps a slice of integer coordinates to an index in
// [0, memorySize)
type Hasher interface {
	Hash(coordinates []int, memorySize int) int
}

const (
	unhTableSize = 2048
	unhIncrement = 449

	// DefaultHashSeed seeds the random table of the default Hasher
	DefaultHashSeed uint64 = 0x5eed
)

// UNH is a universal hash which sums entries of a table of random
// integers selected by each coordinate. Collisions are possible and
// expected when the memory size is smaller than the number of
// distinct coordinates hashed.
type UNH struct {
	table [unhTableSize]uint32
}

// NewUNH returns a new UNH Hasher whose random table is generated
// from seed
func NewUNH(seed uint64) *UNH {
	rng := rand.New(rand.NewSource(seed))

	var h UNH
	for i := range h.table {
		h.table[i] = rng.Uint32()
	}
	return &h
}

// Hash implements the Hasher interface
func (h *UNH) Hash(coordinates []int, memorySize int) int {
	var sum int64
	for i, c := range coordinates {
		index := (c + unhIncrement*i) % unhTableSize
		if index < 0 {
			index += unhTableSize
		}
		sum += int64(h.table[index])
	}
	return int(sum % int64(memorySize))
}
