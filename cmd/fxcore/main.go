package main

import (
	"os"

	"github.com/rustyeddy/fxcore/cmd/fxcore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
