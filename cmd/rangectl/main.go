// Package main is the entry point for the rangectl CLI tool.
package main

import (
	"os"

	"github.com/opsdesk/backend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
