package main

import (
	"os"

	"github.com/go-leo/gof/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
