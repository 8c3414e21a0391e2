package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/formtree/pkg/validators"
)

// Factory builds a validator from the arguments of a definition entry.
// Args may be nil.
type Factory func(args map[string]any) (validators.Validator, error)

// Registry manages the validators available to form definitions.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Default creates a registry holding the built-in validators:
// required, one_of, matches and sanitized.
func Default() *Registry {
	r := NewRegistry()
	r.Register("required", requiredFactory)
	r.Register("one_of", oneOfFactory)
	r.Register("matches", matchesFactory)
	r.Register("sanitized", sanitizedFactory)
	return r
}

// Register adds a factory to the registry.
// If a factory with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = fn
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up a factory by name and runs it.
// Returns an error if the validator is not found or rejects its arguments.
func (r *Registry) Build(name string, args map[string]any) (validators.Validator, error) {
	r.mu.RLock()
	fn, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("validator not found: %s", name)
	}

	v, err := fn(args)
	if err != nil {
		return nil, fmt.Errorf("validator %s: %w", name, err)
	}
	if v == nil {
		return nil, fmt.Errorf("validator %s: factory returned nil", name)
	}
	return v, nil
}
