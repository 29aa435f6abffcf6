package main

import (
	"os"

	"github.com/takumif/aiact-explorer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
