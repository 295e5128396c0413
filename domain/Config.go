package domain

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Type describes a type of domain
type Type string

// Creator describes a domain and can create factories of it
type Creator interface {
	// Create returns a Factory of the described domain. Randomness
	// shared between the domains of the factory, such as the
	// distribution of starting states, is seeded with seed.
	Create(seed uint64) (Factory, error)

	// Type returns the type of domain created
	Type() Type
}

var (
	registryMu      sync.RWMutex
	registeredTypes = map[Type]reflect.Type{}
)

// Register registers the concrete type of c so that Configs of type
// c.Type() can be unmarshalled from JSON. Register panics if the type
// is registered twice.
func Register(c Creator) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registeredTypes[c.Type()]; ok {
		panic(fmt.Sprintf("register: domain type %q already registered",
			c.Type()))
	}
	registeredTypes[c.Type()] = reflect.TypeOf(c)
}

// Registered returns the names of all registered domain types
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registeredTypes))
	for t := range registeredTypes {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

// Lookup returns a Creator with default values for the registered
// type t
func Lookup(t Type) (Creator, error) {
	registryMu.RLock()
	ty, ok := registeredTypes[t]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("lookup: unknown domain type %q", t)
	}
	return reflect.New(ty).Elem().Interface().(Creator), nil
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

// Create returns a Factory of the domain described by the Config
func (c Config) Create(seed uint64) (Factory, error) {
	if c.Creator == nil {
		return nil, fmt.Errorf("create: no domain configured")
	}
	return c.Creator.Create(seed)
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
		return fmt.Errorf("unmarshalJSON: could not read domain type: %v",
			err)
	}

	registryMu.RLock()
	ty, ok := registeredTypes[Type(typeName)]
	registryMu.RUnlock()
	if !ok {
		return fmt.Errorf("unmarshalJSON: unknown domain type %q", typeName)
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
