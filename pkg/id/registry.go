// Package id provides interned identifiers for puppet entities.
//
// Parameters, parts, and drawables are named by strings in the puppet
// asset, but the runtime compares identifiers constantly. The registry
// interns each name once and hands out a stable *ID; equality is pointer
// identity, never string comparison.
package id

// ID is an interned entity name. Two IDs from the same Registry are equal
// iff their pointers are equal.
type ID struct {
	name string
}

// String returns the original name.
func (i *ID) String() string {
	return i.name
}

// Registry interns names to stable IDs. The zero value is not usable;
// create one with NewRegistry.
type Registry struct {
	ids map[string]*ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]*ID)}
}

// Get returns the ID for name, interning it on first use. Repeated calls
// with the same name return the same pointer.
func (r *Registry) Get(name string) *ID {
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := &ID{name: name}
	r.ids[name] = id
	return id
}

// GetExisting returns the ID for name if it was interned before, nil
// otherwise. It never allocates.
func (r *Registry) GetExisting(name string) *ID {
	return r.ids[name]
}

// Len returns the number of interned names.
func (r *Registry) Len() int {
	return len(r.ids)
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry shared by models that do not
// carry their own.
func Default() *Registry {
	return defaultRegistry
}
