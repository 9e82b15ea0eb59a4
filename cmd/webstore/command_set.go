package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <key>=<value> [<key>=<value> ...]",
	Short: "Store one or more key/value pairs",
	Long: `Store one or more key/value pairs. Values that parse as JSON are stored
typed (numbers, booleans, null, arrays, objects); anything else is stored as
a string. All pairs are applied as one batch with a single write.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closer, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closer()

		for _, arg := range args {
			key, raw, ok := strings.Cut(arg, "=")
			if !ok || key == "" {
				return fmt.Errorf("argument %q is not of the form key=value", arg)
			}
			store.SetDeferred(key, parseValue(raw))
		}
		store.Flush(cmd.Context())

		if store.Dirty() {
			return fmt.Errorf("store %q could not be persisted", store.Name())
		}
		fmt.Printf("stored %d %s\n", len(args), plural("entry", "entries", len(args)))
		return nil
	},
}

// parseValue stores JSON-parseable text as its typed value and everything
// else as a plain string.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

func plural(one, many string, n int) string {
	if n == 1 {
		return one
	}
	return many
}

func init() {
	rootCmd.AddCommand(setCmd)
}
