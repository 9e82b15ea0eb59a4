// Package storagetest holds the shared conformance suite run against every
// storage backend implementation.
package storagetest

import (
	"testing"

	"github.com/lmd-code/webstore/storage"
	"github.com/shoenig/test/must"
)

// BackendSuite tests a backend implementation of the storage package, using
// the provided backend instance to perform the tests.
func BackendSuite(t *testing.T, backend storage.Backend[string]) {
	t.Helper()

	value, ok, err := backend.Get(t.Context(), "missing")
	must.NoError(t, err)
	must.False(t, ok)
	must.Eq(t, "", value)

	err = backend.Set(t.Context(), "hello", "world")
	must.NoError(t, err)

	value, ok, err = backend.Get(t.Context(), "hello")
	must.NoError(t, err)
	must.True(t, ok)
	must.Eq(t, "world", value)

	// Overwrite keeps a single entry.
	err = backend.Set(t.Context(), "hello", "world2")
	must.NoError(t, err)

	value, ok, err = backend.Get(t.Context(), "hello")
	must.NoError(t, err)
	must.True(t, ok)
	must.Eq(t, "world2", value)

	err = backend.Set(t.Context(), "other", "value")
	must.NoError(t, err)

	err = backend.Delete(t.Context(), "hello")
	must.NoError(t, err)

	_, ok, err = backend.Get(t.Context(), "hello")
	must.NoError(t, err)
	must.False(t, ok)

	// Deleting an absent key is a no-op, not an error.
	err = backend.Delete(t.Context(), "hello")
	must.NoError(t, err)

	err = backend.Clear(t.Context())
	must.NoError(t, err)

	_, ok, err = backend.Get(t.Context(), "other")
	must.NoError(t, err)
	must.False(t, ok)
}
