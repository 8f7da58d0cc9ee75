package main

import (
	"os"

	"github.com/qtweb-tools/qtweb/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
