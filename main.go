package main

import (
	"os"

	"github.com/nursen/oriki/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
