package page

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"pageloader/internal/diagnostic"
	"pageloader/internal/match"
)

// maxSuggestions bounds the "did you mean" list on unknown names.
const maxSuggestions = 3

// Resolver maps logical names to descriptors. It is safe for concurrent use;
// registration takes a write lock and every lookup a read lock.
type Resolver struct {
	mu       sync.RWMutex
	byID     map[TypeID]*Descriptor
	foldCase bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithCaseInsensitiveNames makes Resolve ignore letter case. Registering two
// types whose names differ only in case then fails.
func WithCaseInsensitiveNames() ResolverOption {
	return func(r *Resolver) { r.foldCase = true }
}

// NewResolver creates an empty resolver. Names match exactly unless
// WithCaseInsensitiveNames is given.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{byID: make(map[TypeID]*Descriptor)}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Resolver) key(id TypeID) TypeID {
	if r.foldCase {
		return TypeID(strings.ToLower(string(id)))
	}

	return id
}

// Register validates d and adds it. A second descriptor with the same name
// is rejected rather than replacing the first. So is a descriptor whose
// flattened property set, or that of a registered subtype, maps one rule
// from two differently named properties.
func (r *Resolver) Register(d *Descriptor) error {
	if d == nil {
		return diagnostic.InvalidDescriptor("", fmt.Errorf("descriptor is nil"))
	}

	if err := d.Validate(); err != nil {
		return diagnostic.InvalidDescriptor(string(d.ID), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	k := r.key(d.ID)
	if existing, ok := r.byID[k]; ok {
		return diagnostic.InvalidDescriptor(string(d.ID),
			fmt.Errorf("page type already registered as %q", existing.ID))
	}

	r.byID[k] = d

	if err := r.checkChainsLocked(d); err != nil {
		delete(r.byID, k)
		return diagnostic.InvalidDescriptor(string(d.ID), err)
	}

	return nil
}

// checkChainsLocked verifies every registered chain that passes through d.
func (r *Resolver) checkChainsLocked(d *Descriptor) error {
	for _, e := range r.byID {
		chain := r.ancestryLocked(e)
		if !slices.Contains(chain, d) {
			continue
		}

		sources := make(map[Source]string)

		for _, p := range flatten(chain) {
			if other, dup := sources[p.Source]; dup {
				return fmt.Errorf("properties %q and %q of %q both map %s", other, p.Name, e.ID, p.Source)
			}

			sources[p.Source] = p.Name
		}
	}

	return nil
}

// Resolve returns the descriptor registered under name.
func (r *Resolver) Resolve(name string) (*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if d, ok := r.byID[r.key(TypeID(name))]; ok {
		return d, nil
	}

	return nil, diagnostic.UnknownPageType(name, match.Suggest(name, r.namesLocked(), maxSuggestions)...)
}

// Validate checks that d satisfies required. Any always passes.
func (r *Resolver) Validate(d *Descriptor, required TypeID) error {
	if required == Any {
		return nil
	}

	if r.IsSubtype(d.ID, required) {
		return nil
	}

	return diagnostic.TypeMismatch(string(d.ID), string(required))
}

// IsSubtype reports whether id is of, extends it, or implements it along its
// parent chain. Unregistered parents end the chain.
func (r *Resolver) IsSubtype(id, of TypeID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	target := r.key(of)
	seen := make(map[TypeID]struct{})

	for cur := id; cur != ""; {
		k := r.key(cur)
		if k == target {
			return true
		}

		if _, loop := seen[k]; loop {
			return false
		}

		seen[k] = struct{}{}

		d, ok := r.byID[k]
		if !ok {
			return false
		}

		if slices.ContainsFunc(d.Implements, func(t TypeID) bool { return r.key(t) == target }) {
			return true
		}

		cur = d.Parent
	}

	return false
}

// Props returns d's properties including inherited ones, root ancestor
// first. A property redeclared by a subtype replaces the inherited one in
// place.
func (r *Resolver) Props(d *Descriptor) []Prop {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return flatten(r.ancestryLocked(d))
}

// flatten merges a chain given leaf first.
func flatten(chain []*Descriptor) []Prop {
	var out []Prop

	index := make(map[string]int)

	for i := len(chain) - 1; i >= 0; i-- {
		for _, p := range chain[i].Props {
			if at, ok := index[p.Name]; ok {
				out[at] = p
				continue
			}

			index[p.Name] = len(out)
			out = append(out, p)
		}
	}

	return out
}

// ancestryLocked returns d followed by its registered ancestors.
func (r *Resolver) ancestryLocked(d *Descriptor) []*Descriptor {
	chain := []*Descriptor{d}
	seen := map[TypeID]struct{}{r.key(d.ID): {}}

	for cur := d.Parent; cur != ""; {
		k := r.key(cur)
		if _, loop := seen[k]; loop {
			break
		}

		seen[k] = struct{}{}

		p, ok := r.byID[k]
		if !ok {
			break
		}

		chain = append(chain, p)
		cur = p.Parent
	}

	return chain
}

// Names returns the registered type names, sorted.
func (r *Resolver) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.namesLocked()
}

func (r *Resolver) namesLocked() []string {
	names := make([]string, 0, len(r.byID))
	for _, d := range r.byID {
		names = append(names, string(d.ID))
	}

	slices.Sort(names)

	return names
}
