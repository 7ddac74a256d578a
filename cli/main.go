package main

import (
	"os"

	"github.com/neonfmt/neon/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
