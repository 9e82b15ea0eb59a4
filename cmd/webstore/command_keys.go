package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the store's keys in insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closer, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closer()

		keys := store.Keys()
		if len(keys) == 0 {
			fmt.Println(styled(styleFaint, "(empty)"))
			return nil
		}
		for i, key := range keys {
			fmt.Printf("%s %s\n", styled(styleFaint, fmt.Sprintf("%d.", i+1)), styled(keyColor, key))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
