package main

import (
	"os"

	"github.com/martinolai/minisearch/cmd/minisearch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
