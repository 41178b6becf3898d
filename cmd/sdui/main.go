package main

import (
	"os"

	"github.com/go-drift/sdui/cmd/sdui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
