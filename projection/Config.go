package projection

import (
	"encoding/json"
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/tdcontrol/spaces"
)

// Type describes the different projections that can be described by
// a Config
type Type string

// Available projection types
const (
	UniformGridType Type = "UniformGrid"
	RBFType         Type = "RBF"
	TileCodingType  Type = "TileCoding"
	TileCoderType   Type = "TileCoder"
)

var registeredTypes = map[string]reflect.Type{
	string(UniformGridType): reflect.TypeOf(UniformGridConfig{}),
	string(RBFType):         reflect.TypeOf(RBFConfig{}),
	string(TileCodingType):  reflect.TypeOf(TileCodingConfig{}),
	string(TileCoderType):   reflect.TypeOf(TileCoderConfig{}),
}

// Creator describes a projection and can create it for some state
// space
type Creator interface {
	// Create returns a new projection over states of space. The seed
	// is used by projections which need randomness.
	Create(space spaces.Space, seed uint64) (Base, error)

	// Type returns the type of projection created
	Type() Type
}

// Config wraps a Creator so that it can be JSON marshalled and
// unmarshalled into its concrete type
type Config struct {
	Type
	Creator
}

// NewConfig returns a Config wrapping c
func NewConfig(c Creator) Config {
	return Config{Type: c.Type(), Creator: c}
}

// Create returns a new projection described by the Config
func (c Config) Create(space spaces.Space, seed uint64) (Base, error) {
	if c.Creator == nil {
		return nil, fmt.Errorf("create: no projection configured")
	}
	return c.Creator.Create(space, seed)
}

// MarshalJSON implements the json.Marshaler interface
func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   Type
		Config Creator
	}{c.Type, c.Creator})
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (c *Config) UnmarshalJSON(data []byte) error {
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	var typeName string
	if err := json.Unmarshal(m["Type"], &typeName); err != nil {
		return fmt.Errorf("unmarshalJSON: could not read projection "+
			"type: %v", err)
	}

	ty, ok := registeredTypes[typeName]
	if !ok {
		return fmt.Errorf("unmarshalJSON: unknown projection type %q",
			typeName)
	}

	value := reflect.New(ty)
	if raw, ok := m["Config"]; ok {
		if err := json.Unmarshal(raw, value.Interface()); err != nil {
			return err
		}
	}

	c.Type = Type(typeName)
	c.Creator = value.Elem().Interface().(Creator)
	return nil
}

// UniformGridConfig describes a UniformGrid over a state space whose
// continuous dimensions are split into Partitions bins
type UniformGridConfig struct {
	Partitions int
}

// Create implements the Creator interface
func (c UniformGridConfig) Create(space spaces.Space, _ uint64) (Base,
	error) {
	partitioned, err := spaces.WithPartitions(space, c.Partitions)
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	p, err := NewUniformGrid(partitioned)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Type returns UniformGridType
func (c UniformGridConfig) Type() Type { return UniformGridType }

// RBFConfig describes an RBF projection with centres at the centres of
// Partitions bins along each continuous dimension
type RBFConfig struct {
	Partitions int
}

// Create implements the Creator interface
func (c RBFConfig) Create(space spaces.Space, _ uint64) (Base, error) {
	partitioned, err := spaces.WithPartitions(space, c.Partitions)
	if err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	p, err := NewRBF(partitioned)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Type returns RBFType
func (c RBFConfig) Type() Type { return RBFType }

// TileCodingConfig describes a hashed TileCoding projection. Each
// tiling places TilesPerDim tiles across the bounds of every
// dimension of the state space.
type TileCodingConfig struct {
	Tilings     int
	Memory      int
	TilesPerDim float64
}

// Create implements the Creator interface
func (c TileCodingConfig) Create(space spaces.Space, seed uint64) (Base,
	error) {
	if c.TilesPerDim <= 0 {
		return nil, fmt.Errorf("create: tiles per dimension must be "+
			"positive: have(%v)", c.TilesPerDim)
	}

	dims := space.Dimensions()
	scale := make([]float64, len(dims))
	for i, d := range dims {
		b := d.Bounds()
		if b.Max <= b.Min {
			scale[i] = 1.0
			continue
		}
		scale[i] = c.TilesPerDim / (b.Max - b.Min)
	}
	p, err := NewTileCoding(c.Tilings, c.Memory, scale, NewUNH(seed))
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Type returns TileCodingType
func (c TileCodingConfig) Type() Type { return TileCodingType }

// TileCoderConfig describes a dense TileCoder over the bounds of a
// state space
type TileCoderConfig struct {
	Bins [][]int
	Bias bool
}

// Create implements the Creator interface
func (c TileCoderConfig) Create(space spaces.Space, seed uint64) (Base,
	error) {
	dims := space.Dimensions()
	bounds := make([]r1.Interval, len(dims))
	for i, d := range dims {
		bounds[i] = d.Bounds()
		if bounds[i].Max <= bounds[i].Min {
			// Single-valued dimensions still need a non-empty box
			bounds[i].Max = bounds[i].Min + 1
		}
	}
	p, err := NewTileCoder(bounds, c.Bins, seed, c.Bias)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Type returns TileCoderType
func (c TileCoderConfig) Type() Type { return TileCoderType }
