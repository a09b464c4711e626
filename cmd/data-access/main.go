package main

import (
	"os"

	"github.com/joshua-poirier/data-access/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
