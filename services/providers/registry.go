package providers

import (
	"sort"
	"sync"
)

// Registry holds the provider clients initialized at startup. A family is
// available for the lifetime of the process iff its credential was supplied;
// there is no runtime re-registration or teardown.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty provider registry
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Register adds a provider under its family name. Registering the same
// family twice overwrites the prior registration.
func (r *Registry) Register(provider Provider) {
	if provider == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.providers[provider.Name()] = provider
}

// IsAvailable reports whether a provider family is registered
func (r *Registry) IsAvailable(family string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[family]
	return ok
}

// Get retrieves a provider by family name
func (r *Registry) Get(family string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[family]
	return provider, ok
}

// Families returns the registered family names in sorted order
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	families := make([]string, 0, len(r.providers))
	for name := range r.providers {
		families = append(families, name)
	}
	sort.Strings(families)

	return families
}

// Count returns the number of registered providers
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.providers)
}
