package registry

import (
	"sort"
	"sync"

	"github.com/protolist-labs/protolist/internal/proto"
)

// Registry maps descriptor names to descriptors. Add is safe for concurrent
// use; lookups after loading need no locking by callers.
type Registry struct {
	mu     sync.RWMutex
	protos map[string]*proto.Descriptor
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{protos: make(map[string]*proto.Descriptor)}
}

// Add inserts d. It fails with *DuplicateNameError if the name is taken.
func (r *Registry) Add(d *proto.Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.protos[d.Name]; ok {
		return &DuplicateNameError{Name: d.Name, Path: d.Path, ExistingPath: existing.Path}
	}
	r.protos[d.Name] = d
	return nil
}

// Get returns the descriptor registered under name.
func (r *Registry) Get(name string) (*proto.Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.protos[name]
	return d, ok
}

// Len returns the number of descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.protos)
}

// Names returns all descriptor names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.protos))
	for n := range r.protos {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// All returns all descriptors sorted by name.
func (r *Registry) All() []*proto.Descriptor {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*proto.Descriptor, 0, len(names))
	for _, n := range names {
		all = append(all, r.protos[n])
	}
	return all
}
