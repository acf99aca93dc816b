package main

import (
	"os"

	"github.com/fekuna/secure-duka/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
