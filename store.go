// Package webstore provides a browser-style key/value store: an ordered
// keyed collection persisted as a single JSON text slot behind a pluggable
// storage backend, with optional deferred saving.
//
// The public surface of Store is deliberately best-effort: storage and
// serialization failures are logged and degrade to in-memory-only state
// rather than surfacing as errors, so a failing host storage area never
// breaks the caller. Callers that need strict persistence guarantees should
// use a storage.Backend directly.
package webstore

import (
	"context"
	"log/slog"

	"github.com/lmd-code/webstore/keymap"
	"github.com/lmd-code/webstore/storage"
)

// Store is a named, ordered key/value store persisted as one JSON text slot
// in a storage backend. Not safe for concurrent use.
type Store struct {
	name     string
	backend  storage.Backend[string]
	sentinel string
	logger   *slog.Logger

	data  *keymap.Map
	dirty bool
}

// Option configures a Store.
type Option func(*Store)

// WithSentinel overrides the object key used to mark nested collections in
// the serialized form. The token must not collide with data keys that hold
// wrapper-shaped plain objects; see keymap.Decode.
func WithSentinel(token string) Option {
	return func(s *Store) {
		if token != "" {
			s.sentinel = token
		}
	}
}

// WithLogger sets the logger used for degradation warnings. Defaults to
// slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Store named name over backend and hydrates it from the
// persisted slot. A missing, malformed, or unreadable slot hydrates as an
// empty store, with a warning logged for the latter two.
func New(ctx context.Context, name string, backend storage.Backend[string], opts ...Option) *Store {
	s := &Store{
		name:     name,
		backend:  backend,
		sentinel: keymap.DefaultSentinel,
		logger:   slog.Default(),
		data:     keymap.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "store", "store", s.name)

	text, found, err := s.backend.Get(ctx, s.name)
	if err != nil {
		s.logger.Warn("storage read failed, starting empty", "err", err)
		return s
	}
	if !found {
		return s
	}

	data, err := keymap.Decode([]byte(text), s.sentinel)
	if err != nil {
		s.logger.Warn("persisted text is malformed, starting empty", "err", err)
	}
	s.data = data
	return s
}

// Name returns the slot key this store persists under.
func (s *Store) Name() string {
	return s.name
}

// Value returns the value stored under key and whether it exists.
func (s *Store) Value(key string) (any, bool) {
	return s.data.Get(key)
}

// Has reports whether key exists.
func (s *Store) Has(key string) bool {
	return s.data.Has(key)
}

// Keys returns the store's keys in insertion order.
func (s *Store) Keys() []string {
	return s.data.Keys()
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return s.data.Len()
}

// Set stores value under key and persists immediately.
func (s *Store) Set(ctx context.Context, key string, value any) {
	s.data.Set(key, value)
	s.dirty = true
	s.Flush(ctx)
}

// SetDeferred stores value under key in memory only, leaving the persisted
// slot untouched until Flush.
func (s *Store) SetDeferred(key string, value any) {
	s.data.Set(key, value)
	s.dirty = true
}

// Remove deletes key and persists, reporting whether the key existed.
// Removing an absent key performs no write at all.
func (s *Store) Remove(ctx context.Context, key string) bool {
	if !s.data.Delete(key) {
		return false
	}
	s.dirty = true
	s.Flush(ctx)
	return true
}

// RemoveDeferred deletes key in memory only, reporting whether it existed.
func (s *Store) RemoveDeferred(key string) bool {
	if !s.data.Delete(key) {
		return false
	}
	s.dirty = true
	return true
}

// Clear empties the store and persists the empty form.
func (s *Store) Clear(ctx context.Context) {
	s.data.Clear()
	s.dirty = true
	s.Flush(ctx)
}

// Dirty reports whether in-memory state has mutations not yet persisted.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Flush persists the current in-memory state when it is dirty. Serialization
// failure writes the empty-object form instead; a storage failure leaves the
// store dirty so a later Flush can retry. Both are logged, neither is
// returned.
func (s *Store) Flush(ctx context.Context) {
	if !s.dirty {
		return
	}

	text, err := keymap.Encode(s.data, s.sentinel)
	if err != nil {
		s.logger.Warn("collection not serializable, persisting empty form", "err", err)
		text = []byte("{}")
	}

	if err := s.backend.Set(ctx, s.name, string(text)); err != nil {
		s.logger.Warn("storage write failed, keeping state in memory", "err", err)
		return
	}
	s.dirty = false
}
