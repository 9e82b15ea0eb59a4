// Package pebble provides a storage backend on top of the Pebble storage
// engine, the durable analogue of a browser's local storage area.
package pebble

import (
	"context"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/lmd-code/webstore/storage"
)

// Ensure that Backend implements the storage.Backend interface.
var _ storage.Backend[any] = (*Backend[any])(nil)

// Backend is a storage backend that uses Pebble as the underlying storage
// engine.
//
// Pebble can use an in-memory filesystem or a directory on disk for storage,
// depending on the options provided. By default it uses a directory on disk.
type Backend[V any] struct {
	db    *pebble.DB
	codec storage.Codec[V]
}

// NewBackend creates a new Pebble storage backend.
func NewBackend[V any](dirname string, opts *pebble.Options, codec storage.Codec[V]) (*Backend[V], error) {
	db, err := pebble.Open(dirname, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble database: %w", err)
	}

	return &Backend[V]{db: db, codec: codec}, nil
}

// Get retrieves a value from the storage backend by its key.
func (b *Backend[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V

	valueBytes, closer, err := b.db.Get([]byte(key))
	if err != nil {
		return zero, false, nil
	}
	defer closer.Close()

	value, err := b.codec.DecodeValue(valueBytes)
	if err != nil {
		return zero, false, fmt.Errorf("failed to decode value: %w", err)
	}

	return value, true, nil
}

// Set stores a key/value pair in the storage backend.
func (b *Backend[V]) Set(ctx context.Context, key string, value V) error {
	valueBytes, err := b.codec.EncodeValue(value)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}

	if err := b.db.Set([]byte(key), valueBytes, pebble.Sync); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a key/value pair from the storage backend.
func (b *Backend[V]) Delete(ctx context.Context, key string) error {
	if err := b.db.Delete([]byte(key), pebble.Sync); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	return nil
}

// Clear removes every key/value pair from the storage backend.
func (b *Backend[V]) Clear(ctx context.Context) error {
	iter, err := b.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return fmt.Errorf("failed to create pebble iterator: %w", err)
	}

	var keys [][]byte
	for iter.First(); iter.Valid(); iter.Next() {
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		keys = append(keys, key)
	}
	if err := iter.Close(); err != nil {
		return fmt.Errorf("failed to close pebble iterator: %w", err)
	}

	for _, key := range keys {
		if err := b.db.Delete(key, pebble.Sync); err != nil {
			return fmt.Errorf("failed to delete key: %w", err)
		}
	}

	return nil
}

// Close closes the storage backend.
func (b *Backend[V]) Close(ctx context.Context) error {
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("failed to close pebble database: %w", err)
	}
	return nil
}
