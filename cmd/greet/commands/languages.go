package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"greet/internal/domain"
)

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported greeting languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, locale := range wire.Greeter.Locales() {
				g, err := wire.Greeter.Greet(domain.Request{Locale: locale})
				if err != nil {
					return err
				}
				fmt.Printf("%-4s %s\n", locale, g.Text)
			}
			return nil
		},
	}
}
