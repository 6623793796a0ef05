package main

import (
	"os"

	"github.com/enginedeck/deck/cmd/deckctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
