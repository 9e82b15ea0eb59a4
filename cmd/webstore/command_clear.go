package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every entry from the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closer, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closer()

		n := store.Len()
		store.Clear(cmd.Context())
		fmt.Printf("cleared %d %s from store %q\n", n, plural("entry", "entries", n), store.Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
