package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"greet/internal/prefs"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change saved defaults",
	}

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Print one preference value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(wire.Prefs.Get(args[0]))
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save a preference value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.Prefs.Set(args[0], args[1])
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Print all preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			all := wire.Prefs.All()
			for _, key := range []string{prefs.KeyName, prefs.KeyLocale, prefs.KeyShout} {
				fmt.Printf("%s=%s\n", key, all[key])
			}
			return nil
		},
	}

	cmd.AddCommand(get, set, list)
	return cmd
}
