package main

import (
	"os"

	"github.com/glassquiz/glassquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
