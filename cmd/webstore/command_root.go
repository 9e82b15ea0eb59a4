package main

import (
	"cmp"
	"context"
	"fmt"
	"os"

	"github.com/lmd-code/webstore"
	"github.com/lmd-code/webstore/storage"
	backendPebble "github.com/lmd-code/webstore/storage/pebble"
	"github.com/spf13/cobra"
)

// DefaultDBPath is the default location of the pebble database holding the
// stores. On Unix-like systems it is ~/.webstore, on Windows
// %USERPROFILE%/.webstore.
var DefaultDBPath = cmp.Or(os.Getenv("HOME"), os.Getenv("USERPROFILE")) + "/.webstore"

var (
	flagDB     string
	flagStore  string
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:          "webstore",
	Short:        "Inspect and mutate persistent key/value stores",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database directory (default ~/.webstore)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "store name (default \"default\")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
}

// openStore opens the pebble-backed store selected by flags and config. The
// returned closer must be called once the command is done with the store.
func openStore(ctx context.Context) (*webstore.Store, func(), error) {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if flagDB != "" {
		cfg.DB = flagDB
	}
	if flagStore != "" {
		cfg.Store = flagStore
	}

	backend, err := backendPebble.NewBackend(cfg.DB, nil, &storage.JSONCodec[string]{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database at %s: %w", cfg.DB, err)
	}

	store := webstore.New(ctx, cfg.Store, backend)
	closer := func() {
		if err := backend.Close(ctx); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return store, closer, nil
}
