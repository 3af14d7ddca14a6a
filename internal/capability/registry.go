package capability

import (
	"sync"

	"github.com/cleared-dev/qbtypes/internal/model"
)

// Registry maps kinds to their descriptors.
type Registry struct {
	descriptors map[model.Kind]*Descriptor
	order       []model.Kind
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[model.Kind]*Descriptor)}
}

// Register adds a descriptor. Panics on a duplicate kind.
func (r *Registry) Register(d Descriptor) {
	if _, ok := r.descriptors[d.Kind]; ok {
		panic("duplicate kind descriptor: " + string(d.Kind))
	}
	r.descriptors[d.Kind] = &d
	r.order = append(r.order, d.Kind)
}

// Lookup returns the descriptor for k.
func (r *Registry) Lookup(k model.Kind) (*Descriptor, bool) {
	d, ok := r.descriptors[k]
	return d, ok
}

// Descriptors returns every descriptor in registration order.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(r.order))
	for i, k := range r.order {
		out[i] = r.descriptors[k]
	}
	return out
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	for _, d := range builtin() {
		r.Register(d)
	}
	return r
})

// Default returns the registry of built-in kinds. It is built once and must
// not be modified.
func Default() *Registry {
	return defaultRegistry()
}
