package scenario

import "sync"

var globalRegistry *Registry
var globalRegistryMutex sync.RWMutex

func SetRegistry(new *Registry) *Registry {
	globalRegistryMutex.Lock()
	defer globalRegistryMutex.Unlock()
	old := globalRegistry
	globalRegistry = new
	return old
}

func GetRegistry() *Registry {
	globalRegistryMutex.RLock()
	defer globalRegistryMutex.RUnlock()
	return globalRegistry
}

func init() {
	globalRegistry = NewRegistry()
}

// Register adds s to the default Registry.
func Register(name string, s Scenario) error {
	return GetRegistry().Register(name, s)
}

// MustRegister adds s to the default Registry, panicking on error.
func MustRegister(name string, s Scenario) {
	GetRegistry().MustRegister(name, s)
}

// Lookup finds a Scenario in the default Registry.
func Lookup(name string) (Scenario, error) {
	return GetRegistry().Lookup(name)
}

// Names lists the default Registry's names in registration order.
func Names() []string {
	return GetRegistry().Names()
}
