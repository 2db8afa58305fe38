package main

import (
	"os"

	"github.com/avani/mathflow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
