package agent

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/samuelfneumann/tdcontrol/domain"
)

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes, acting
	// in domains like d. Randomness of the agent is seeded with seed.
	CreateAgent(d domain.Domain, seed uint64) (ControlAgent, error)

	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of agent the Config creates
	Type() Type
}

// TypedConfig implements functionality for typing a Config. In this
// way, a Config can explicitly have its type stored so that when
// deserializing the Config, it can be deserialized into its concrete
// type without declaring beforehand a variable of its concrete type.
type TypedConfig struct {
	Type
	Config
}

// NewTypedConfig types the argument Config and returns it as a
// TypedConfig which explicitly holds its Type.
func NewTypedConfig(c Config) TypedConfig {
	return TypedConfig{Type: c.Type(), Config: c}
}

// CreateAgent validates the wrapped Config and creates its agent
func (t TypedConfig) CreateAgent(d domain.Domain, seed uint64) (ControlAgent,
	error) {
	if t.Config == nil {
		return nil, fmt.Errorf("createAgent: no agent configured")
	}
	if err := t.Config.Validate(); err != nil {
		return nil, fmt.Errorf("createAgent: %v: %v", t.Type, err)
	}
	return t.Config.CreateAgent(d, seed)
}

// MarshalJSON implements the json.Marshaler interface
func (t TypedConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   Type
		Config Config
	}{t.Type, t.Config})
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *TypedConfig) UnmarshalJSON(data []byte) error {
	config, typeName, err := unmarshalConfig(data, "Type", "Config")
	if err != nil {
		return err
	}

	t.Type = typeName
	t.Config = config
	return nil
}

// unmarshalConfig uses reflection to unmarshal a Config into its
// concrete type. Both the Config and its Type are returned.
func unmarshalConfig(data []byte, typeJSONField,
	valueJSONField string) (Config, Type, error) {
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, "", err
	}

	var typeName Type
	if err := json.Unmarshal(m[typeJSONField], &typeName); err != nil {
		return nil, "", fmt.Errorf("unmarshalJSON: could not read agent "+
			"type: %v", err)
	}

	ty, ok := lookup(typeName)
	if !ok {
		return nil, "", fmt.Errorf("unmarshalJSON: unknown agent type %q",
			typeName)
	}

	value := reflect.New(ty)
	if raw, ok := m[valueJSONField]; ok {
		if err := json.Unmarshal(raw, value.Interface()); err != nil {
			return nil, "", err
		}
	}

	return value.Elem().Interface().(Config), typeName, nil
}
