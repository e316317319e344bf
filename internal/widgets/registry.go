package widgets

import (
	"strings"
	"sync"

	"github.com/goliatone/go-slug"
)

// Registry stores built-in and host-defined widget descriptors. Registration
// order is preserved so the gallery menu stays stable across runs.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Descriptor
	order   []string
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Descriptor),
	}
}

// Register adds a descriptor. Descriptors without an id or render function
// are ignored; re-registering an id replaces the entry in place.
func (r *Registry) Register(descriptor Descriptor) {
	key := canonicalKey(descriptor.ID)
	if key == "" || descriptor.Render == nil {
		return
	}
	descriptor.ID = key

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]Descriptor)
	}
	if _, exists := r.entries[key]; !exists {
		r.order = append(r.order, key)
	}
	r.entries[key] = descriptor
}

// Get resolves a descriptor by id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.entries[canonicalKey(id)]
	return descriptor, ok
}

// List returns every descriptor in registration order.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, 0, len(r.order))
	for _, key := range r.order {
		if descriptor, ok := r.entries[key]; ok {
			out = append(out, descriptor)
		}
	}
	return out
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

func canonicalKey(input string) string {
	candidate := strings.TrimSpace(input)
	if candidate == "" {
		return ""
	}
	normalized, err := slug.Normalize(candidate)
	if err != nil || normalized == "" {
		return strings.ToLower(candidate)
	}
	return normalized
}
