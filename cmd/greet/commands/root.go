package commands

import (
	"github.com/spf13/cobra"

	"greet/internal/app"
	"greet/internal/prefs"
)

var (
	home string
	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "greet",
		Short: "Greetings from the command line",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				home = prefs.DefaultHome()
			}
			w, err := app.NewWire(app.Config{Home: home})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "preference dir (default ~/.greet)")

	root.AddCommand(helloCmd(), languagesCmd(), configCmd())
	return root.Execute()
}
