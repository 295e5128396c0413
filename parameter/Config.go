package parameter

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Type describes the different types of Parameter that can be
// described by a Config
type Type string

// Available Parameter types
const (
	ConstantType    Type = "Constant"
	ExponentialType Type = "Exponential"
	LinearType      Type = "Linear"
	PolynomialType  Type = "Polynomial"
)

var registeredTypes = map[string]reflect.Type{
	string(ConstantType):    reflect.TypeOf(ConstantConfig{}),
	string(ExponentialType): reflect.TypeOf(ExponentialConfig{}),
	string(LinearType):      reflect.TypeOf(LinearConfig{}),
	string(PolynomialType):  reflect.TypeOf(PolynomialConfig{}),
}

// Creator describes a Parameter and can create new instances of it
type Creator interface {
	// Create returns a new Parameter described by the Creator
	Create() (Parameter, error)

	// Type returns the type of Parameter created
	Type() Type
}

// Config wraps a Creator so that it can be JSON marshalled and
// unmarshalled into its concrete type.
type Config struct {
	Type
	Creator
}

// NewConfig returns a Config wrapping c
func NewConfig(c Creator) Config {
	return Config{Type: c.Type(), Creator: c}
}

// Fixed returns a Config describing a constant Parameter
func Fixed(v float64) Config {
	return NewConfig(ConstantConfig{Value: v})
}

// Create returns a new Parameter described by the Config
func (c Config) Create() (Parameter, error) {
	if c.Creator == nil {
		return nil, fmt.Errorf("create: no parameter configured")
	}
	return c.Creator.Create()
}

// String implements the fmt.Stringer interface
func (c Config) String() string {
	return fmt.Sprintf("{%v: %+v}", c.Type, c.Creator)
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
		return fmt.Errorf("unmarshalJSON: could not read parameter type: %v",
			err)
	}

	ty, ok := registeredTypes[typeName]
	if !ok {
		return fmt.Errorf("unmarshalJSON: unknown parameter type %q",
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

// ConstantConfig describes a Constant Parameter
type ConstantConfig struct {
	Value float64
}

// Create returns a new Constant
func (c ConstantConfig) Create() (Parameter, error) {
	return NewConstant(c.Value), nil
}

// Type returns ConstantType
func (c ConstantConfig) Type() Type { return ConstantType }

// ExponentialConfig describes an Exponential Parameter
type ExponentialConfig struct {
	Init, Floor, Decay float64
}

// Create returns a new Exponential
func (c ExponentialConfig) Create() (Parameter, error) {
	return NewExponential(c.Init, c.Floor, c.Decay)
}

// Type returns ExponentialType
func (c ExponentialConfig) Type() Type { return ExponentialType }

// LinearConfig describes a linearly interpolated Parameter
type LinearConfig struct {
	Init, Final float64
	Horizon     int
}

// Create returns a new linearly interpolated Parameter
func (c LinearConfig) Create() (Parameter, error) {
	return NewLinear(c.Init, c.Final, c.Horizon)
}

// Type returns LinearType
func (c LinearConfig) Type() Type { return LinearType }

// PolynomialConfig describes a Polynomial Parameter
type PolynomialConfig struct {
	Init, Final float64
	Horizon     int
	Power       float64
}

// Create returns a new Polynomial
func (c PolynomialConfig) Create() (Parameter, error) {
	return NewPolynomial(c.Init, c.Final, c.Horizon, c.Power)
}

// Type returns PolynomialType
func (c PolynomialConfig) Type() Type { return PolynomialType }
