package main

import (
	"os"

	"senscode/cmd/senscode/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
