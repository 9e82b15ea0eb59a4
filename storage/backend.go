// Package storage defines the pluggable persistence layer behind a store: a
// string-keyed slot interface with the get/set/remove/clear shape of the
// browser storage APIs. A memory backend stands in for a host storage area in
// tests, and a pebble backend provides a durable local equivalent.
package storage

import "context"

// Entry is a single key/value pair held by a backend.
type Entry[V any] struct {
	Key   string
	Value V
}

// Backend is a string-keyed slot store. Implementations are not required to
// be safe for concurrent use; the store layer above is single-writer.
type Backend[V any] interface {
	Get(ctx context.Context, key string) (value V, found bool, err error)
	Set(ctx context.Context, key string, value V) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close(ctx context.Context) error
}
