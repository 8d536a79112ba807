package sink

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores sinks by name, providing discovery and duplication
// safeguards for the collection layer.
type Registry struct {
	mu    sync.RWMutex
	sinks map[string]Sink
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		sinks: make(map[string]Sink),
	}
}

// Register adds a sink by its Name(). Duplicate names return an error.
func (r *Registry) Register(s Sink) error {
	if s == nil {
		return fmt.Errorf("sink: sink is required")
	}
	name := s.Name()
	if name == "" {
		return fmt.Errorf("sink: sink name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sinks[name]; exists {
		return fmt.Errorf("sink: sink %q already registered", name)
	}

	r.sinks[name] = s
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(s Sink) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Get retrieves a sink by name.
func (r *Registry) Get(name string) (Sink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sinks[name]
	if !ok {
		return nil, fmt.Errorf("sink: sink %q not found", name)
	}
	return s, nil
}

// List returns a sorted list of sink names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sinks))
	for name := range r.sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a sink is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sinks[name]
	return ok
}
