package main

import (
	"os"

	"mygriya/cmd/griya/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
