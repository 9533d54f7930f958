package main

import (
	"os"

	"github.com/zenmed-health/zenmed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
