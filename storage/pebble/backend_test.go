package pebble_test

import (
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/lmd-code/webstore/storage"
	backendPebble "github.com/lmd-code/webstore/storage/pebble"
	"github.com/lmd-code/webstore/storage/storagetest"
	"github.com/shoenig/test/must"
)

func TestBackend_dir(t *testing.T) {
	b, err := backendPebble.NewBackend(t.TempDir(), nil, &storage.JSONCodec[string]{})
	must.NoError(t, err)
	must.NotNil(t, b)

	storagetest.BackendSuite(t, b)
}

func TestBackend_mem_vfs(t *testing.T) {
	opts := &pebble.Options{
		FS: vfs.NewMem(),
	}

	b, err := backendPebble.NewBackend("", opts, &storage.JSONCodec[string]{})
	must.NoError(t, err)
	must.NotNil(t, b)

	storagetest.BackendSuite(t, b)
}
