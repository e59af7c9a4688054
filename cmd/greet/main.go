package main

import (
	"os"

	"greet/cmd/greet/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
