package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownFormat is returned when no registered adapter recognises a
// document.
var ErrUnknownFormat = errors.New("schema: no adapter recognises document")

// Adapter turns a catalog document of one format into tables.
type Adapter interface {
	Name() string
	Detect(doc Document) bool
	Tables(ctx context.Context, doc Document) (Tables, error)
}

// Registry stores adapters by name. Detection tries adapters in registration
// order, so register the more specific formats first.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register adds an adapter by its Name(). Duplicate names return an error.
func (r *Registry) Register(adapter Adapter) error {
	if adapter == nil {
		return errors.New("schema: adapter is required")
	}
	name := adapter.Name()
	if name == "" {
		return errors.New("schema: adapter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.adapters[name]; exists {
		return fmt.Errorf("schema: adapter %q already registered", name)
	}
	r.adapters[name] = adapter
	r.order = append(r.order, name)
	return nil
}

// MustRegister panics when Register fails.
func (r *Registry) MustRegister(adapter Adapter) {
	if err := r.Register(adapter); err != nil {
		panic(err)
	}
}

// Get returns the adapter registered under name.
func (r *Registry) Get(name string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	adapter, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("schema: adapter %q not found", name)
	}
	return adapter, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.adapters[name]
	return ok
}

// List returns the registered adapter names in lexical order.
func (r *Registry) List() []string {
	r.mu.RLock()
	names := append([]string(nil), r.order...)
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Detect returns the first adapter, in registration order, that recognises
// doc.
func (r *Registry) Detect(doc Document) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range r.order {
		if adapter := r.adapters[name]; adapter.Detect(doc) {
			return adapter, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, doc.Location())
}

// Tables detects the document format and converts it.
func (r *Registry) Tables(ctx context.Context, doc Document) (Tables, error) {
	adapter, err := r.Detect(doc)
	if err != nil {
		return nil, err
	}
	tables, err := adapter.Tables(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("schema: %s adapter: %w", adapter.Name(), err)
	}
	return tables, nil
}
