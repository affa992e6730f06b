// Package main is the entry point of the lineaview CLI.
package main

import (
	"os"

	"github.com/lineaview-labs/lineaview/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
