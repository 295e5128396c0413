package policy

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/samuelfneumann/tdcontrol/parameter"
)

// Type describes the different policies that can be described by a
// Config
type Type string

// Available policy types
const (
	GreedyType        Type = "Greedy"
	EpsilonGreedyType Type = "EpsilonGreedy"
	BoltzmannType     Type = "Boltzmann"
	RandomType        Type = "Random"
)

var registeredTypes = map[string]reflect.Type{
	string(GreedyType):        reflect.TypeOf(GreedyConfig{}),
	string(EpsilonGreedyType): reflect.TypeOf(EpsilonGreedyConfig{}),
	string(BoltzmannType):     reflect.TypeOf(BoltzmannConfig{}),
	string(RandomType):        reflect.TypeOf(RandomConfig{}),
}

// Creator describes a policy and can create new instances of it
type Creator interface {
	Create() (Policy, error)
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

// Create returns a new policy described by the Config
func (c Config) Create() (Policy, error) {
	if c.Creator == nil {
		return nil, fmt.Errorf("create: no policy configured")
	}
	return c.Creator.Create()
}

// MarshalJSON implements the json.Marshaler interface
func (c Config) MarshalJSON() ([]byte, error) {
	if c.Creator == nil {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Type   Type
		Config Creator
	}{c.Type, c.Creator})
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (c *Config) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	var typeName string
	if err := json.Unmarshal(m["Type"], &typeName); err != nil {
		return fmt.Errorf("unmarshalJSON: could not read policy type: %v",
			err)
	}

	ty, ok := registeredTypes[typeName]
	if !ok {
		return fmt.Errorf("unmarshalJSON: unknown policy type %q", typeName)
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

// GreedyConfig describes a Greedy policy
type GreedyConfig struct{}

// Create returns a new Greedy policy
func (GreedyConfig) Create() (Policy, error) { return NewGreedy(), nil }

// Type returns GreedyType
func (GreedyConfig) Type() Type { return GreedyType }

// EpsilonGreedyConfig describes an EpsilonGreedy policy
type EpsilonGreedyConfig struct {
	Epsilon parameter.Config
}

// Create returns a new EpsilonGreedy policy
func (c EpsilonGreedyConfig) Create() (Policy, error) {
	eps, err := c.Epsilon.Create()
	if err != nil {
		return nil, fmt.Errorf("create: ε: %v", err)
	}
	p, err := NewEpsilonGreedy(eps)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Type returns EpsilonGreedyType
func (EpsilonGreedyConfig) Type() Type { return EpsilonGreedyType }

// BoltzmannConfig describes a Boltzmann policy
type BoltzmannConfig struct {
	Tau parameter.Config
}

// Create returns a new Boltzmann policy
func (c BoltzmannConfig) Create() (Policy, error) {
	tau, err := c.Tau.Create()
	if err != nil {
		return nil, fmt.Errorf("create: τ: %v", err)
	}
	p, err := NewBoltzmann(tau)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Type returns BoltzmannType
func (BoltzmannConfig) Type() Type { return BoltzmannType }

// RandomConfig describes a Random policy
type RandomConfig struct{}

// Create returns a new Random policy
func (RandomConfig) Create() (Policy, error) { return NewRandom(), nil }

// Type returns RandomType
func (RandomConfig) Type() Type { return RandomType }
