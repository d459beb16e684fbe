package marshal

import (
	"slices"
	"sync"

	"pageloader/internal/diagnostic"
	"pageloader/internal/page"
)

// Registry maps value kinds to marshallers. It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	marshallers map[page.Kind]Marshaller
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		marshallers: make(map[page.Kind]Marshaller),
	}
}

// Register routes every kind m declares to m. Kinds already registered are
// overwritten: the last registration wins.
func (r *Registry) Register(m Marshaller) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, k := range m.Kinds() {
		r.marshallers[k] = m
	}
}

// RegisterKind routes kind to m regardless of the kinds m declares,
// overwriting any previous entry.
func (r *Registry) RegisterKind(kind page.Kind, m Marshaller) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.marshallers[kind] = m
}

// Lookup returns the marshaller most recently registered for kind.
func (r *Registry) Lookup(kind page.Kind) (Marshaller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.marshallers[kind]
	if !ok {
		return nil, diagnostic.UnknownMarshaller(string(kind))
	}

	return m, nil
}

// Has returns true if a marshaller is registered for kind.
func (r *Registry) Has(kind page.Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.marshallers[kind]

	return exists
}

// Kinds returns all registered kinds, sorted.
func (r *Registry) Kinds() []page.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]page.Kind, 0, len(r.marshallers))
	for k := range r.marshallers {
		kinds = append(kinds, k)
	}

	slices.Sort(kinds)

	return kinds
}
