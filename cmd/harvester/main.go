package main

import (
	"os"

	"github.com/nexusscout/chronicle-harvester/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
