package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var delCmd = &cobra.Command{
	Use:   "del <key>",
	Short: "Remove a key from the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closer, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closer()

		if !store.Remove(cmd.Context(), args[0]) {
			fmt.Printf("key %s was not present\n", styled(styleFaint, args[0]))
			return nil
		}
		fmt.Printf("removed %s\n", styled(styleBold, args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(delCmd)
}
