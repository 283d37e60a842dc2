// Command pagekit pages through tabular data from a CSV file or a
// generated demo data set.
package main

import (
	"fmt"
	"os"

	"pagekit/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // Build-time variable.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
