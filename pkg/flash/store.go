// Package flash carries small string maps across a redirect. Values written
// during one request are visible to the next one and then discarded.
//
// The forms package keeps field errors under FormErrorsKey so a handler can
// register errors, redirect, and let the next render display them.
package flash

import (
	"context"
	"maps"
	"sync"
)

// FormErrorsKey is the key under which form field errors are stored.
const FormErrorsKey = "form_errors"

// Store is the flash contract consumed by forms.Errors.
type Store interface {
	Get(key string) map[string]string
	Set(key string, values map[string]string)
}

type ctxKeyStore struct{}

// WithStore attaches a store to ctx.
func WithStore(ctx context.Context, store Store) context.Context {
	if store == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKeyStore{}, store)
}

// FromContext returns the store attached by WithStore or Middleware.
func FromContext(ctx context.Context) (Store, bool) {
	if ctx == nil {
		return nil, false
	}
	store, ok := ctx.Value(ctxKeyStore{}).(Store)
	return store, ok && store != nil
}

// Memory is an in-process Store, useful for tests and for callers that keep
// flash data in their own session layer.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string]string)}
}

// Get returns a copy of the map stored under key, or nil.
func (m *Memory) Get(key string) map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.data[key])
}

// Set replaces the map stored under key. A nil or empty map removes it.
func (m *Memory) Set(key string, values map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(values) == 0 {
		delete(m.data, key)
		return
	}
	m.data[key] = maps.Clone(values)
}
