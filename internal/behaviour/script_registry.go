package behaviour

import (
	"sort"
	"sync"
)

type ScriptConstructor func() Component

var (
	registryMu     sync.RWMutex
	scriptRegistry = make(map[string]ScriptConstructor)
)

// RegisterScript makes a script class available by name. It is meant to be
// called from init functions and panics on an empty name or nil constructor.
func RegisterScript(name string, constructor ScriptConstructor) {
	if name == "" {
		panic("behaviour: RegisterScript with empty name")
	}
	if constructor == nil {
		panic("behaviour: RegisterScript constructor is nil for " + name)
	}
	registryMu.Lock()
	scriptRegistry[name] = constructor
	registryMu.Unlock()
}

// GetAvailableScripts returns the registered script names in sorted order
func GetAvailableScripts() []string {
	registryMu.RLock()
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	registryMu.RUnlock()

	sort.Strings(names)
	return names
}

func HasScript(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := scriptRegistry[name]
	return ok
}

// CreateScript builds a fresh instance of the named script, or nil if the
// name is not registered.
func CreateScript(name string) Component {
	registryMu.RLock()
	constructor, exists := scriptRegistry[name]
	registryMu.RUnlock()
	if exists {
		return constructor()
	}
	return nil
}
