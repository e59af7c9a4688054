package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"greet/internal/domain"
	"greet/internal/prefs"
)

func helloCmd() *cobra.Command {
	var (
		locale string
		shout  bool
	)

	cmd := &cobra.Command{
		Use:   "hello [name]",
		Short: "Print a greeting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			// Flags win over saved preferences.
			if locale == "" {
				locale = wire.Prefs.Get(prefs.KeyLocale)
			}
			if !cmd.Flags().Changed("shout") {
				shout, _ = strconv.ParseBool(wire.Prefs.Get(prefs.KeyShout))
			}

			g, err := wire.Greeter.Greet(domain.Request{
				Name:   name,
				Locale: domain.Locale(locale),
				Shout:  shout,
			})
			if err != nil {
				return err
			}
			fmt.Println(g.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "", "greeting language, e.g. fr or pt-BR")
	cmd.Flags().BoolVar(&shout, "shout", false, "print the greeting in upper case")
	return cmd
}
