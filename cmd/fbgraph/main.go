package main

import (
	"os"

	"github.com/custodia-labs/fbgraph/internal/adapters/driving/cli"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}
