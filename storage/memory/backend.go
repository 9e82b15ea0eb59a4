// Package memory provides a slice-backed in-memory storage backend. It keeps
// entries in insertion order and doubles as the test stand-in for a host
// storage area.
package memory

import (
	"context"
	"slices"

	"github.com/lmd-code/webstore/storage"
)

var _ storage.Backend[string] = (*Backend[string])(nil)

// Backend is an in-memory storage backend.
type Backend[V any] struct {
	store []storage.Entry[V]
}

// NewBackend creates a new in-memory storage backend.
func NewBackend[V any]() *Backend[V] {
	return &Backend[V]{}
}

// Get retrieves a value from the in-memory store by its key.
func (b *Backend[V]) Get(ctx context.Context, key string) (V, bool, error) {
	for _, entry := range b.store {
		if entry.Key == key {
			return entry.Value, true, nil
		}
	}
	var zero V
	return zero, false, nil
}

// Set stores a key/value pair, updating in place when the key exists and
// appending otherwise, so insertion order is preserved.
func (b *Backend[V]) Set(ctx context.Context, key string, value V) error {
	for i, entry := range b.store {
		if entry.Key == key {
			b.store[i].Value = value
			return nil
		}
	}
	b.store = append(b.store, storage.Entry[V]{Key: key, Value: value})
	return nil
}

// Delete removes a key/value pair by its key. Deleting an absent key is a
// no-op.
func (b *Backend[V]) Delete(ctx context.Context, key string) error {
	for i, entry := range b.store {
		if entry.Key == key {
			b.store = slices.Delete(b.store, i, i+1)
			break
		}
	}
	return nil
}

// Clear drops every entry.
func (b *Backend[V]) Clear(ctx context.Context) error {
	b.store = nil
	return nil
}

// Close is a no-op for the in-memory backend.
func (b *Backend[V]) Close(context.Context) error {
	return nil
}

// Len returns the number of stored entries. Test helper.
func (b *Backend[V]) Len() int {
	return len(b.store)
}
