package scenario

import (
	"fmt"
	"sync"
)

// A Registry maps pattern names to runnable Scenarios. It preserves
// registration order so iteration is deterministic, and it is safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	scenarios map[string]Scenario
	names     []string
}

func NewRegistry() *Registry {
	return &Registry{scenarios: map[string]Scenario{}}
}

// Register adds s under name. Registering an empty name, a nil Scenario,
// or a name already taken is an error.
func (r *Registry) Register(name string, s Scenario) error {
	if name == "" {
		return ErrNameEmpty
	}
	if s == nil {
		return ErrScenarioNil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.scenarios[name]; ok {
		return fmt.Errorf("%w: %s", ErrRegistered, name)
	}
	r.scenarios[name] = s
	r.names = append(r.names, name)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, s Scenario) {
	if err := r.Register(name, s); err != nil {
		panic(err)
	}
}

// Lookup returns the Scenario registered under name.
func (r *Registry) Lookup(name string) (Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.scenarios[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnregistered, name)
	}
	return s, nil
}

// Names returns a copy of the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}
