package main

import (
	"encoding/json"
	"fmt"

	"github.com/lmd-code/webstore/keymap"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value stored under a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closer, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closer()

		value, ok := store.Value(args[0])
		if !ok {
			return fmt.Errorf("key %q not found in store %q", args[0], store.Name())
		}

		switch v := value.(type) {
		case string:
			fmt.Println(v)
		case *keymap.Map:
			data, err := keymap.Encode(v, keymap.DefaultSentinel)
			if err != nil {
				return fmt.Errorf("failed to render value: %w", err)
			}
			fmt.Println(string(data))
		default:
			data, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("failed to render value: %w", err)
			}
			fmt.Println(string(data))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
