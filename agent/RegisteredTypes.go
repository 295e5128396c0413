package agent

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Type represents a specific type of an agent Config. Configs with
// this type create agents of the corresponding type.
type Type string

// Agent types implemented by the subpackages of agent
const (
	ActorCritic Type = "ActorCritic"
	OffPAC      Type = "OffPAC"
	QSigma      Type = "QSigma"
	QLearning   Type = "QLearning"
	ESarsa      Type = "ESarsa"
)

// Registered types with the package. Once a Type has been registered
// a TypedConfig with that type can be unmarshalled.
//
// No Types are registered with this package upon initialization. Each
// agent package registers its own Type to avoid circular imports.
var (
	registryMu      sync.RWMutex
	registeredTypes = map[Type]reflect.Type{}
)

// Register registers an agent's Type with the concrete type of config
// so that TypedConfigs of type agentType are unmarshalled into it.
// Register panics if agentType is registered twice.
func Register(agentType Type, config Config) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registeredTypes[agentType]; ok {
		panic(fmt.Sprintf("register: agent type %q already registered",
			agentType))
	}
	registeredTypes[agentType] = reflect.TypeOf(config)
}

// Registered returns the names of all registered agent types
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

func lookup(t Type) (reflect.Type, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ty, ok := registeredTypes[t]
	return ty, ok
}
